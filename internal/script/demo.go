package script

const (
	DemoCapacity = 5
	DemoGrowStep = 3
)

// Demo builds an array with capacity 5 and step 3, fills it, then
// overwrites, inserts and removes, printing after each stage.
const Demo = `# demonstration
add 10
add 20
add 30
print
set 1 50
print
insert 1 40
print
remove 2
print
`

func DemoCommands() []Command {
	cmds, err := ParseString(Demo)
	if err != nil {
		panic(err)
	}
	return cmds
}
