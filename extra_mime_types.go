package main

import (
	"mime"

	"gitlab.com/gitlab-org/labkit/log"
)

// shader sources are served as plain text so browsers display them inline
var extraMIMETypes = map[string]string{
	".avif": "image/avif",
	".glsl": "text/plain; charset=utf-8",
	".frag": "text/plain; charset=utf-8",
	".vert": "text/plain; charset=utf-8",
	".wgsl": "text/wgsl; charset=utf-8",
}

func addExtraMIMETypes() {
	for ext, mimeType := range extraMIMETypes {
		if err := mime.AddExtensionType(ext, mimeType); err != nil {
			log.WithError(err).Errorf("failed to add extension: %q with MIME type: %q", ext, mimeType)
		}
	}
}
