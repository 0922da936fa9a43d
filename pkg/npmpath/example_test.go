//go:build !windows

package npmpath_test

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/arthur-debert/npmpath/pkg/environment"
	"github.com/arthur-debert/npmpath/pkg/filesystem"
	"github.com/arthur-debert/npmpath/pkg/npmpath"
)

func exampleComposer() *npmpath.Composer {
	fsys := afero.NewMemMapFs()
	_ = fsys.MkdirAll("/work/app/node_modules/.bin", 0o755)
	_ = fsys.MkdirAll("/work/node_modules/.bin", 0o755)

	return npmpath.New(
		npmpath.WithFS(filesystem.NewAferoFS(fsys)),
		npmpath.WithEnvironment(environment.NewMap(map[string]string{"PATH": "/usr/bin:/bin"})),
		npmpath.WithExecutable(func() (string, error) { return "/opt/node/bin/node", nil }),
	)
}

func ExampleComposer_ComputeSync() {
	c := exampleComposer()

	path, err := c.ComputeSync(npmpath.Options{Cwd: "/work/app", Root: "/opt/npm"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(path)
	// Output: /work/app/node_modules/.bin:/work/node_modules/.bin:/opt/node/bin:/opt/npm/bin/node-gyp-bin:/usr/bin:/bin
}

func ExampleComposer_Compose() {
	c := exampleComposer()

	comp, _ := c.Compose(npmpath.Options{Cwd: "/work/app", Root: "/opt/npm"})
	for _, e := range comp.Entries {
		fmt.Printf("%-10s %s\n", e.Source, e.Dir)
	}
	// Output:
	// local-bin  /work/app/node_modules/.bin
	// local-bin  /work/node_modules/.bin
	// executable /opt/node/bin
	// auxiliary  /opt/npm/bin/node-gyp-bin
	// inherited  /usr/bin
	// inherited  /bin
}

func ExampleComposer_ApplyAsync() {
	c := exampleComposer()

	res := <-c.ApplyAsync(npmpath.Options{Cwd: "/work", Root: "/opt/npm"})
	fmt.Println(res.Err == nil, c.Environment().Getenv("PATH") == res.Path)
	// Output: true true
}
