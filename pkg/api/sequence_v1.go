// pkg/api/sequence_v1.go
package api

// SequenceV1 is the stable JSON schema for a generated run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SequenceV1 struct {
	SequenceNumber int       `json:"sequence_number"`
	Blank          string    `json:"blank_location"`
	Standard       string    `json:"standard_location"`
	Entries        []EntryV1 `json:"entries"`
}

// EntryV1 is one injection.
type EntryV1 struct {
	Label string `json:"label"`
	Slot  string `json:"slot"`
	Kind  string `json:"kind"` // "sample" | "blank" | "standard"
}
