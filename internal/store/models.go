package store

import (
	"strings"
	"time"
)

// DecodeRun records one call to decoder.DecodeTrace: the generator set
// and probability it ran with, when it was created, and the terminal
// node's metric and path.
type DecodeRun struct {
	ID          string    `gorm:"primarykey" json:"id"`
	Generators  string    `gorm:"size:256" json:"generators"`
	Probability float64   `json:"probability"`
	TerminalMu  float64   `json:"terminal_mu"`
	DecodedBits string    `gorm:"size:1024" json:"decoded_bits"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (DecodeRun) TableName() string {
	return "decode_runs"
}

// DecodeNode records one pushed search node belonging to a DecodeRun,
// in the order it was created.
type DecodeNode struct {
	ID         uint    `gorm:"primarykey" json:"id"`
	RunID      string  `gorm:"index;size:64" json:"run_id"`
	Seq        int     `json:"seq"`
	Path       string  `gorm:"size:256" json:"path"`
	Code       string  `gorm:"size:64" json:"code"`
	Mu         float64 `json:"mu"`
	IsTerminal bool    `json:"is_terminal"`
}

// TableName specifies the table name for GORM.
func (DecodeNode) TableName() string {
	return "decode_nodes"
}

// bitsToString renders a bit slice as a compact "0101" string, the
// same format the path/code fields are stored in.
func bitsToString(bits []int) string {
	var b strings.Builder
	for _, v := range bits {
		if v == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// IsValid reports whether the run has the fields required to persist.
func (r DecodeRun) IsValid() bool {
	return r.ID != "" && r.Generators != ""
}
