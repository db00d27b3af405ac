// Package middleware provides HTTP middleware components for the order intake service.
package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression gzips responses for clients that accept it. The catalog
// payload compresses well and the kiosks are on the shop's wifi, so this
// is worth the CPU.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression)
}
