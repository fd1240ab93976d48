// Package spot obtains current and historical spot prices for precious
// metals from the Gemini oracle, repairing or replacing unusable answers
// with a synthetic series so that consumers always receive a usable,
// chronologically sorted price history.
package spot

import "fmt"

// Metal identifies a precious metal tracked by the application.
//
// The values are the German display names, they are also the persisted
// form in the inventory file and the CSV import/export format.
type Metal string

const (
	Gold   Metal = "Gold"
	Silver Metal = "Silber"
)

// Metals lists all supported metals.
func Metals() []Metal { return []Metal{Gold, Silver} }

func (m Metal) String() string { return string(m) }

// ParseMetal parses a metal name as found in user input or imported files.
func ParseMetal(s string) (Metal, error) {
	switch s {
	case "Gold", "gold":
		return Gold, nil
	case "Silber", "silber", "Silver", "silver":
		return Silver, nil
	}
	return "", fmt.Errorf("unknown metal %q (want Gold or Silber)", s)
}
