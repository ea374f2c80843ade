/*
Package ports defines the driven ports (interfaces) for the assessment engine.

These interfaces decouple the questionnaire core from external implementations,
allowing sessions to be persisted to various backends and diagrams to be
rendered by interchangeable tools.

# Key Interfaces

  - SnapshotStore: Responsible for persisting and loading session State.
  - DiagramRenderer: Turns a d2 diagram description into an image artifact.
*/
package ports
