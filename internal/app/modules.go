package app

import (
	"github.com/specialistvlad/funcgrid/internal/registry"
	"github.com/specialistvlad/funcgrid/modules/constant"
	"github.com/specialistvlad/funcgrid/modules/csvdata"
	"github.com/specialistvlad/funcgrid/modules/env_vars"
	"github.com/specialistvlad/funcgrid/modules/mathfn"
	"github.com/specialistvlad/funcgrid/modules/sqlscalar"
)

// coreModules is the definitive list of all function modules that are
// compiled into the funcgrid binary.
var coreModules = []registry.Module{
	&constant.Module{},
	&mathfn.Module{},
	&env_vars.Module{},
	&csvdata.Module{},
	&sqlscalar.Module{},
}
