package tools

// ITool is the common surface of every lookup tool.
type ITool interface {
	SetTitle(string)
	Title() string
	SetDescription(string)
	Description() string
}
