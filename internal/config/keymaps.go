package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Cards
	AddCard     string `yaml:"add_card"`
	EditCard    string `yaml:"edit_card"`
	DeleteCard  string `yaml:"delete_card"`
	ViewCard    string `yaml:"view_card"`
	RefreshRepo string `yaml:"refresh_repo"`

	// Drag and drop
	PickUp      string `yaml:"pick_up"`      // start dragging the selected card
	PickUpLane  string `yaml:"pick_up_lane"` // start dragging the selected column
	Drop        string `yaml:"drop"`
	CancelDrag  string `yaml:"cancel_drag"`
	Undo        string `yaml:"undo"`

	// Columns
	CreateColumn string `yaml:"create_column"`
	DeleteColumn string `yaml:"delete_column"`

	// Navigation
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`

	// Other
	Filter string `yaml:"filter"`
	Quit   string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddCard:     "a",
		EditCard:    "e",
		DeleteCard:  "d",
		ViewCard:    "enter",
		RefreshRepo: "r",

		PickUp:     " ",
		PickUpLane: "c",
		Drop:       "enter",
		CancelDrag: "esc",
		Undo:       "u",

		CreateColumn: "C",
		DeleteColumn: "D",

		Left:  "h",
		Right: "l",
		Up:    "k",
		Down:  "j",

		Filter: "/",
		Quit:   "q",
	}
}

// applyDefaults fills in any unset key bindings
func (k *KeyMappings) applyDefaults() {
	def := DefaultKeyMappings()
	if k.AddCard == "" {
		k.AddCard = def.AddCard
	}
	if k.EditCard == "" {
		k.EditCard = def.EditCard
	}
	if k.DeleteCard == "" {
		k.DeleteCard = def.DeleteCard
	}
	if k.ViewCard == "" {
		k.ViewCard = def.ViewCard
	}
	if k.RefreshRepo == "" {
		k.RefreshRepo = def.RefreshRepo
	}
	if k.PickUp == "" {
		k.PickUp = def.PickUp
	}
	if k.PickUpLane == "" {
		k.PickUpLane = def.PickUpLane
	}
	if k.Drop == "" {
		k.Drop = def.Drop
	}
	if k.CancelDrag == "" {
		k.CancelDrag = def.CancelDrag
	}
	if k.Undo == "" {
		k.Undo = def.Undo
	}
	if k.CreateColumn == "" {
		k.CreateColumn = def.CreateColumn
	}
	if k.DeleteColumn == "" {
		k.DeleteColumn = def.DeleteColumn
	}
	if k.Left == "" {
		k.Left = def.Left
	}
	if k.Right == "" {
		k.Right = def.Right
	}
	if k.Up == "" {
		k.Up = def.Up
	}
	if k.Down == "" {
		k.Down = def.Down
	}
	if k.Filter == "" {
		k.Filter = def.Filter
	}
	if k.Quit == "" {
		k.Quit = def.Quit
	}
}
