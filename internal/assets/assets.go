package assets

import _ "embed"

//go:embed index.html
var IndexHTML []byte
