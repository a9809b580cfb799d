// SPDX-License-Identifier: EPL-2.0

package gif

import (
	"fmt"
	"image/gif"
	"io"

	"github.com/ihalseide/img-to-sound/pixel"
)

type Decoder struct{}

// Decode reads the first frame of a GIF; animation frames past the
// first are ignored.
func (Decoder) Decode(r io.Reader) (*pixel.Grid, error) {
	img, err := gif.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pixel.ErrCannotLoad, err)
	}

	return pixel.FromImage(img), nil
}
