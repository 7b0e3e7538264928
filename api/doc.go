// Package api defines the contracts shared by the hioload-containers
// packages: generic container interfaces and the common error taxonomy.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package api
