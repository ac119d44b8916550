package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of a pipeline file.
type fileRoot struct {
	Defaults []*defaultsBlock `hcl:"defaults,block"`
	Steps    []*stepBlock     `hcl:"step,block"`
}

// defaultsBlock keeps its body raw; keys are validated by config.ResolveSettings.
type defaultsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// stepBlock is one `step "<name>"` block.
type stepBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}
