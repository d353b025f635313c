package entity

// Mark is the content of a board cell and also identifies a player.
type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	PlayerTie Mark = "-"

	EmptyCell Mark = ""
)

// Opponent returns the mark that moves after this one.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// String renders an empty cell as a blank.
func (that Mark) String() string {
	if that == EmptyCell {
		return " "
	}
	return string(that)
}
