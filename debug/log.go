package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/tern-format/go-tern/encode"
	"github.com/tern-format/go-tern/ir"
)

// Tern wraps a node so %s renders it pretty in debug output.
type Tern struct{ *ir.Node }

func (y Tern) String() string {
	x := y.Node
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf); err != nil {
		return fmt.Sprintf("[raw node] %v", x)
	}
	return buf.String()
}

// Logf writes to stderr, rendering any *ir.Node arguments through
// the pretty encoder.
func Logf(msg string, args ...any) {
	for i := range args {
		x, ok := args[i].(*ir.Node)
		if !ok {
			continue
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(x, buf); err != nil {
			args[i] = fmt.Sprintf("[raw node] %v", x)
			continue
		}
		args[i] = buf.String()
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
