package azure

import (
	"context"
	"io"

	"github.com/goironbox/ironboxdx-go/internal/cloud"
	"github.com/goironbox/ironboxdx-go/internal/constants"
)

// progressReader counts bytes as the SDK consumes them, invoking the
// callback per read.
type progressReader struct {
	r          io.Reader
	total      int64
	n          int64
	onProgress cloud.ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.n += int64(n)
		if p.onProgress != nil {
			p.onProgress(p.n, p.total)
		}
	}
	return n, err
}

// Upload streams size bytes from src into container/blob. The callback
// fires once with zero progress before the first chunk, then per chunk as
// the SDK drains the source. Storage errors are returned as the SDK
// produced them.
func (c *Client) Upload(ctx context.Context, src io.Reader, size int64, container, blob string, onProgress cloud.ProgressFunc) (int64, error) {
	if onProgress != nil {
		onProgress(0, size)
	}

	pr := &progressReader{r: src, total: size, onProgress: onProgress}
	if _, err := c.client.UploadStream(ctx, container, blob, pr, nil); err != nil {
		return pr.n, err
	}
	return pr.n, nil
}

// Download streams container/blob into dst, reporting progress against the
// content length the service returns. Storage errors are returned as the
// SDK produced them; local write failures abort the copy.
func (c *Client) Download(ctx context.Context, dst io.Writer, container, blob string, onProgress cloud.ProgressFunc) (int64, error) {
	resp, err := c.client.DownloadStream(ctx, container, blob, nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var total int64
	if resp.ContentLength != nil {
		total = *resp.ContentLength
	}
	if onProgress != nil {
		onProgress(0, total)
	}

	var downloaded int64
	buf := make([]byte, constants.TransferCopyBufferSize)
	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return downloaded, werr
			}
			downloaded += int64(n)
			if onProgress != nil {
				onProgress(downloaded, total)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return downloaded, err
		}
	}
	return downloaded, nil
}
