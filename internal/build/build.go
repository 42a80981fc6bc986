// SPDX-License-Identifier: MIT

package build

// Version of sectormap. Set with -ldflags "-X .../internal/build.Version=..." on release.
var Version = "0.0.0"
