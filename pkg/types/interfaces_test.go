package types_test

import (
	"github.com/arthur-debert/npmpath/pkg/environment"
	"github.com/arthur-debert/npmpath/pkg/filesystem"
	"github.com/arthur-debert/npmpath/pkg/types"
	"github.com/spf13/afero"
)

// Compile-time checks that the shipped implementations satisfy the interfaces
var (
	_ types.FS          = filesystem.NewOS()
	_ types.FS          = filesystem.NewAferoFS(afero.NewMemMapFs())
	_ types.Environment = environment.OS()
	_ types.Environment = environment.NewMap(nil)
)
