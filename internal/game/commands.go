package game

import (
	"fmt"
	"strings"
)

// command binds a keyword (plus aliases) to a handler producing the
// response for the given character. Handlers are pure: they read template
// data and return a string, nothing else.
type command struct {
	name    string
	aliases []string
	run     func(c *Character) string
}

// commands is the fixed command set, in help-listing order. New commands
// are added here; dispatch is built from this table.
var commands = []command{
	{name: "help"},
	{name: "look", run: cmdLook},
	{name: "inventory", aliases: []string{"inv", "i"}, run: cmdInventory},
	{name: "stats", run: cmdStats},
	{name: "about", run: cmdAbout},
}

// cmdHelp lists the commands table itself, so wiring it in the composite
// literal above would be an initialization cycle; assign it in init instead.
func init() {
	for i := range commands {
		if commands[i].name == "help" {
			commands[i].run = cmdHelp
		}
	}
}

var commandIndex = buildCommandIndex()

func buildCommandIndex() map[string]*command {
	idx := make(map[string]*command)
	for i := range commands {
		idx[commands[i].name] = &commands[i]
		for _, alias := range commands[i].aliases {
			idx[alias] = &commands[i]
		}
	}
	return idx
}

// Dispatch resolves one line of input to its response. Matching is
// case-insensitive and ignores surrounding whitespace; anything that is not
// an exact keyword or alias produces the unknown-command diagnostic, quoting
// the input as the player typed it.
func Dispatch(c *Character, input string) string {
	key := strings.ToLower(strings.TrimSpace(input))
	if cmd, ok := commandIndex[key]; ok {
		return cmd.run(c)
	}
	return fmt.Sprintf(`Unknown command: "%s". Type "help" for available commands.`, input)
}

func cmdHelp(_ *Character) string {
	names := make([]string, len(commands))
	for i := range commands {
		names[i] = commands[i].name
	}
	return "Available commands: " + strings.Join(names, ", ")
}

func cmdLook(c *Character) string {
	return c.StartingLocation
}

func cmdInventory(c *Character) string {
	return "Inventory: " + strings.Join(c.Inventory, ", ")
}

func cmdStats(c *Character) string {
	a := c.Attributes
	return fmt.Sprintf("Stats: Strength %d, Constitution %d, Agility %d, Intelligence %d, Willpower %d, Charisma %d",
		a.Strength, a.Constitution, a.Agility, a.Intelligence, a.Willpower, a.Charisma)
}

func cmdAbout(c *Character) string {
	return fmt.Sprintf("You are %s, following the path of the %s. %s", c.Name, c.Path, c.Description)
}
