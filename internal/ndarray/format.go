package ndarray

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// String renders the array as a shape line followed by a nested,
// row-major listing of the elements:
//
//	shape: (2, 3)
//	[[5, 5, 5],
//	 [5, 5, 42]]
//
// Rows after the first start on a new line, indented by their depth.
// A rank-0 array prints its single value; a zero-sized dimension prints [].
func (a *NDArray[T]) String() string {
	var sb strings.Builder
	sb.WriteString("shape: ")
	sb.WriteString(a.shape.String())
	sb.WriteByte('\n')

	if len(a.shape) == 0 {
		fmt.Fprintf(&sb, "%v", a.data[0])
		return sb.String()
	}
	a.format(&sb, 0, 0)
	return sb.String()
}

func (a *NDArray[T]) format(sb *strings.Builder, dim, offset int) {
	sb.WriteByte('[')
	last := dim == len(a.shape)-1
	for i := 0; i < a.shape[dim]; i++ {
		if last {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(sb, "%v", a.data[offset+i])
			continue
		}
		if i > 0 {
			sb.WriteString(",\n")
			sb.WriteString(strings.Repeat(" ", dim+1))
		}
		a.format(sb, dim+1, offset+i*a.strides[dim])
	}
	sb.WriteByte(']')
}

// Fprint writes the String rendering and a trailing newline to w.
func (a *NDArray[T]) Fprint(w io.Writer) error {
	_, err := io.WriteString(w, a.String()+"\n")
	return err
}

// Print writes the array to standard output and returns any write error.
func (a *NDArray[T]) Print() error {
	return a.Fprint(os.Stdout)
}
