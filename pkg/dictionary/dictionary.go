package dictionary

// Dictionary is the spell-check capability consumed by the spelling
// checker: word membership plus ordered correction suggestions. Lookups
// are total; any input string yields a boolean or a (possibly empty)
// suggestion list.
type Dictionary interface {
	Check(word string) bool
	Suggest(word string) []string
}

// Info describes an available dictionary for configuration purposes
type Info struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// available lists the dictionaries shipped embedded in the binary
var available = []Info{
	{ID: "en_US", Description: "English (United States)"},
	{ID: "en_GB", Description: "English (Great Britain)"},
}

// Available returns the dictionaries that can be selected by ID
func Available() []Info {
	infos := make([]Info, len(available))
	copy(infos, available)
	return infos
}

// Exists reports whether a dictionary ID can be constructed
func Exists(id string) bool {
	for _, info := range available {
		if info.ID == id {
			return true
		}
	}
	return false
}

// New constructs the dictionary for the given ID
func New(id string) (Dictionary, error) {
	return newFuzzyDict(id, "")
}

// NewWithPersonal constructs the dictionary for the given ID seeded with a
// personal word list file (one word per line). A missing file is treated
// as an empty list.
func NewWithPersonal(id, personalWordList string) (Dictionary, error) {
	return newFuzzyDict(id, personalWordList)
}
