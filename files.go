package slackexport

// In this file: download token injection into attachment thumbnail URLs.

import (
	"net/url"
	"strings"

	"github.com/proelbtn/slack-export-viewer/internal/slackapi"
)

// thumbLinks returns pointers to the fixed set of thumbnail URLs of the
// file.  An absent thumbnail size is an empty string.
func thumbLinks(f *slackapi.File) []*string {
	return []*string{
		&f.Thumb64,
		&f.Thumb80,
		&f.Thumb160,
		&f.Thumb360,
		&f.Thumb480,
		&f.Thumb720,
		&f.Thumb800,
		&f.Thumb960,
		&f.Thumb1024,
	}
}

// appendDownloadToken adds the t=<token> query parameter to every present
// thumbnail URL of the image files attached to msg.  Non-image files and
// absent thumbnail sizes are left untouched.  If token is empty, does
// nothing.
func appendDownloadToken(msg *slackapi.Message, token string) error {
	if token == "" {
		return nil
	}
	for i := range msg.Files {
		f := &msg.Files[i]
		if !strings.HasPrefix(f.Mimetype, "image") {
			continue
		}
		for _, ptrS := range thumbLinks(f) {
			if *ptrS == "" {
				continue
			}
			updated, err := addToken(*ptrS, token)
			if err != nil {
				return err
			}
			*ptrS = updated
		}
	}
	return nil
}

// addToken updates the uri, adding the t= query parameter with token value.
// If token or uri is empty, it does nothing.
func addToken(uri string, token string) (string, error) {
	if token == "" || uri == "" {
		return uri, nil
	}
	u, err := url.Parse(uri)
	if err != nil {
		return "", err
	}
	val := u.Query()
	val.Set("t", token)
	u.RawQuery = val.Encode()
	return u.String(), nil
}
