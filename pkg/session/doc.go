/*
Package session implements session management and persistence orchestration.

It provides the portable snapshot format used for export/import, filename
derivation for saved assessments, and a manager that serializes concurrent
access to the same session within one process.
*/
package session
