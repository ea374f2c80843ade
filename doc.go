/*
Package datakompass is a guided data flow assessment engine. It walks a
user through describing a data-processing system (its systems, parties,
data categories, and purposes), evaluates declarative recommendation
rules over the collected answers, and produces a d2 diagram description
of the resulting data flow.

# Concept

The questionnaire is a static, ordered catalog of questions. Conditions
on prior answers control visibility, repeated sections expand per item
of a list-valued answer, and two special collectors gather the
party/processor mapping and the processor matrix. A traversal owns all
mutation of one session; the rule engine only reads.

# Usage

	a := datakompass.New("session-1", "de")
	for {
		q, ok := a.Current()
		if !ok {
			break
		}
		// collect an answer for q, then:
		_ = a.Answer(q.ID, value)
		if err := a.Next(); err != nil {
			// question still unanswered, re-prompt
		}
	}
	report := a.Report()

Sessions persist through the stores in internal/adapters and the
portable snapshot format in pkg/session.
*/
package datakompass
