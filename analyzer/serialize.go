package analyzer

// SerializableToken is the boundary form of a [Token].
type SerializableToken struct {
	Kind   string `json:"kind"`
	Lexeme string `json:"lexeme"`
	Offset int    `json:"offset"`
}

// SerializableIssue is a serializable human-readable description of the problem found in the input.
type SerializableIssue struct {
	// ByteIdx is the position of the starting byte of the erroneous sequence in the input.
	ByteIdx int `json:"byte_idx"`
	// Issue is the name of the issue.
	Issue string `json:"issue"`
	// Description is a human-readable description of the issue.
	Description string `json:"description"`
}

// SerializableReport is the boundary form of a [Report].
// Errors carries the messages only, Issues carries the same errors with their positions.
type SerializableReport struct {
	DocumentID string              `json:"document_id"`
	Tokens     []SerializableToken `json:"tokens"`
	Errors     []string            `json:"errors"`
	Issues     []SerializableIssue `json:"issues"`
}

// Serialize converts the Report into its boundary form. The slices are never nil.
func (r Report) Serialize() SerializableReport {
	out := SerializableReport{
		DocumentID: r.DocumentID,
		Tokens:     make([]SerializableToken, len(r.Tokens)),
		Errors:     make([]string, len(r.Errors)),
		Issues:     make([]SerializableIssue, len(r.Errors)),
	}

	for i, t := range r.Tokens {
		out.Tokens[i] = SerializableToken{
			Kind:   t.Kind.String(),
			Lexeme: t.Lexeme,
			Offset: t.Offset,
		}
	}

	for i, e := range r.Errors {
		msg := e.Error()
		out.Errors[i] = msg
		out.Issues[i] = SerializableIssue{
			ByteIdx:     e.Offset,
			Issue:       e.Issue.String(),
			Description: msg,
		}
	}

	return out
}
