package labyrinth

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/luca/internal/screen"
	"github.com/abhisek/luca/internal/ui/layout"
	"github.com/abhisek/luca/internal/ui/theme"
)

// grid is the fixed maze layout. S marks the start, E the exit, # a wall.
// A fixed layout keeps the game instant to start.
var grid = []string{
	"####################",
	"#S   #         #   #",
	"### ### #### # # # #",
	"#          # # # # #",
	"# ### #### # # # # #",
	"# #   #    #   #   #",
	"# # ### ####### ## E",
	"# #   #       #    #",
	"# ### # ##### ###  #",
	"#     #     #     ##",
	"####################",
}

// LabyrinthScreen is the maze mini-game: guide the marker from S to E.
type LabyrinthScreen struct {
	playerX int
	playerY int
	exitX   int
	exitY   int
	won     bool
}

var _ screen.Screen = (*LabyrinthScreen)(nil)
var _ screen.KeyHintProvider = (*LabyrinthScreen)(nil)

// New creates the game with the player at the start cell.
func New() *LabyrinthScreen {
	l := &LabyrinthScreen{}
	for y, row := range grid {
		for x, cell := range row {
			switch cell {
			case 'S':
				l.playerX, l.playerY = x, y
			case 'E':
				l.exitX, l.exitY = x, y
			}
		}
	}
	return l
}

func (l *LabyrinthScreen) Init() tea.Cmd {
	return nil
}

func (l *LabyrinthScreen) Title() string {
	return "Labyrinth"
}

func (l *LabyrinthScreen) KeyHints() []layout.KeyHint {
	if l.won {
		return []layout.KeyHint{{Key: "Esc", Description: "Leave"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓←→/WASD", Description: "Move"},
		{Key: "Esc", Description: "Leave"},
	}
}

func (l *LabyrinthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || l.won {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "w":
		l.move(0, -1)
	case "down", "s":
		l.move(0, 1)
	case "left", "a":
		l.move(-1, 0)
	case "right", "d":
		l.move(1, 0)
	}

	if l.playerX == l.exitX && l.playerY == l.exitY {
		l.won = true
	}

	return l, nil
}

// move shifts the player unless a wall (or the edge) blocks the way.
func (l *LabyrinthScreen) move(dx, dy int) {
	x, y := l.playerX+dx, l.playerY+dy
	if isWall(x, y) {
		return
	}
	l.playerX, l.playerY = x, y
}

func isWall(x, y int) bool {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return true
	}
	return grid[y][x] == '#'
}

func (l *LabyrinthScreen) View(width, height int) string {
	wallStyle := lipgloss.NewStyle().Foreground(theme.Primary)
	exitStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	playerStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var rows []string
	rows = append(rows, theme.Title.Render("Labyrinth Escape"))
	rows = append(rows, "")

	for y, row := range grid {
		var b strings.Builder
		for x, cell := range row {
			switch {
			case x == l.playerX && y == l.playerY:
				b.WriteString(playerStyle.Render("◉ "))
			case cell == '#':
				b.WriteString(wallStyle.Render("██"))
			case cell == 'E':
				b.WriteString(exitStyle.Render("▒▒"))
			default:
				b.WriteString("  ")
			}
		}
		rows = append(rows, b.String())
	}

	rows = append(rows, "")
	if l.won {
		rows = append(rows, theme.Correct.Render("You escaped!"))
	} else {
		rows = append(rows, theme.Hint.Render("find your way to the green exit"))
	}

	content := strings.Join(rows, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
