package types

const UnknownProductName = "Unknown Product"

// ProductMention is one product recommendation attached to a journal entry.
// All fields are comparable so two mentions are equal only when every field is.
type ProductMention struct {
	Name      string  `json:"name"`
	Match     float64 `json:"match"`
	EntryDate string  `json:"entry_date"`
}

// AnalysisPayload is the decoded form of a journal entry's analysis_data metadata.
type AnalysisPayload struct {
	Products    []ProductMention   `json:"products"`
	CurlPattern string             `json:"curl_pattern,omitempty"`
	Scores      map[string]float64 `json:"scores,omitempty"`
}
