package sdcops

import (
	"embed"
)

// helpTopics holds the markdown documents served by `sdcops help <topic>`.
//
//go:embed topics/*.md
var helpTopics embed.FS

const helpTopicsRoot = "topics"
