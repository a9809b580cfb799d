// SPDX-License-Identifier: EPL-2.0

package jpeg

import (
	"fmt"
	"image/jpeg"
	"io"

	"github.com/ihalseide/img-to-sound/pixel"
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*pixel.Grid, error) {
	img, err := jpeg.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pixel.ErrCannotLoad, err)
	}

	return pixel.FromImage(img), nil
}
