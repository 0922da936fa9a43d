// Package npmpath computes the search path npm gives to package scripts.
//
// Starting from a working directory, the composer walks up to the
// filesystem root and collects every node_modules/.bin directory it finds,
// nearest first. It then adds the directory of the running executable, the
// node-gyp-bin directory bundled with npm, and finally the inherited search
// path, dropping duplicates while keeping the first occurrence.
//
// # Usage
//
//	path, err := npmpath.ComputeSync(npmpath.Options{Cwd: "/work/app"})
//
//	// Deferred delivery
//	res := <-npmpath.ComputeAsync(npmpath.Options{})
//
//	// Commit to the process environment
//	_, err = npmpath.ApplySync(npmpath.Options{})
//
// A Composer built with New can be pointed at any types.FS and
// types.Environment, which is how the tests run against in-memory trees and
// isolated environments.
//
// # Ordering
//
// For cwd /work/app/node_modules/dep the result is:
//
//	/work/app/node_modules/dep/node_modules/.bin   (if present)
//	/work/app/node_modules/.bin                    (if present)
//	/work/node_modules/.bin                        (if present)
//	<dir of running executable>
//	<npm root>/bin/node-gyp-bin                    (if npm root resolves)
//	<inherited PATH entries>
package npmpath
