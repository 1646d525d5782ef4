//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Navigator=Navigator"
package service

import "context"

// LoginPath is the login entry point every forced logout redirects to.
const LoginPath = "/login"

type Navigator interface {
	Redirect(ctx context.Context, path string)
}
