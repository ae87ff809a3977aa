package session

import "fmt"

// Text shared by the terminal and window front-ends

const (
	MenuTitle    = "BASKETBALL SHOOTING GAME"
	GameOverText = "GAME OVER"
	ReturnHint   = "Press ENTER to return to menu"
)

// Instructions lists the in-match controls
var Instructions = []string{
	"SPACE: Shoot ball",
	"UP/DOWN: Adjust power",
	"LEFT/RIGHT: Adjust angle",
	"R: Reset ball",
	"M: Mute",
	"ESC: Menu",
}

var levelNames = map[int]string{1: "Easy", 2: "Medium", 3: "Hard"}

// LevelName returns the display name for a level id
func LevelName(id int) string {
	if name, ok := levelNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Custom %d", id)
}

// MenuLines returns the menu body for a view
func MenuLines(v View) []string {
	lines := []string{
		fmt.Sprintf("Select Level or adjust time (UP/DOWN): %d seconds", v.State.Match.DurationSeconds),
	}
	for _, id := range v.Levels {
		marker := " "
		if id == v.Level {
			marker = ">"
		}
		lines = append(lines, fmt.Sprintf("%s Level %d: %s", marker, id, LevelName(id)))
	}
	lines = append(lines, "ENTER: start selected level, ESC: quit")
	return lines
}

// HUDLines returns score, time and level lines for a running match
func HUDLines(v View) []string {
	m := v.State.Match
	return []string{
		fmt.Sprintf("Score: %d/%d", m.Score, m.Attempts),
		fmt.Sprintf("Time: %s", v.Clock),
		fmt.Sprintf("Level: %d", m.Level),
	}
}

// FinalScoreLine returns the game-over tally
func FinalScoreLine(v View) string {
	return fmt.Sprintf("Final Score: %d/%d", v.Final.FinalScore, v.Final.Attempts)
}
