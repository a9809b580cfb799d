// SPDX-License-Identifier: EPL-2.0

package png

import (
	"fmt"
	"image/png"
	"io"

	"github.com/ihalseide/img-to-sound/pixel"
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*pixel.Grid, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pixel.ErrCannotLoad, err)
	}

	return pixel.FromImage(img), nil
}
