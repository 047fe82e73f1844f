package batch

import "github.com/Drolfothesgnir/htmlscan/analyzer"

// Summary aggregates the outcomes of a batch.
type Summary struct {
	Documents int `json:"documents"`
	Failed    int `json:"failed"`
	Tokens    int `json:"tokens"`
	Errors    int `json:"errors"`
}

// Summarize counts the documents, failures, tokens and errors of the outcomes.
func Summarize(outcomes []Outcome) (s Summary) {
	s.Documents = len(outcomes)
	for _, o := range outcomes {
		if o.Failed() {
			s.Failed++
			continue
		}
		s.Tokens += len(o.Report.Tokens)
		s.Errors += len(o.Report.Errors)
	}
	return
}

// SerializableOutcome is the boundary form of an [Outcome].
// Failure is set only for failed documents, their tokens and errors are empty.
type SerializableOutcome struct {
	analyzer.SerializableReport
	Failure string `json:"failure,omitempty"`
}

// Serialize converts the Outcome into its boundary form.
func (o Outcome) Serialize() SerializableOutcome {
	if o.Failed() {
		report := analyzer.Report{DocumentID: o.DocumentID}
		return SerializableOutcome{
			SerializableReport: report.Serialize(),
			Failure:            o.Err.Error(),
		}
	}

	return SerializableOutcome{SerializableReport: o.Report.Serialize()}
}

// SerializeAll converts every Outcome, preserving the order.
func SerializeAll(outcomes []Outcome) []SerializableOutcome {
	out := make([]SerializableOutcome, len(outcomes))
	for i, o := range outcomes {
		out[i] = o.Serialize()
	}
	return out
}
