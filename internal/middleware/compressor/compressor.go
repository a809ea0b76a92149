// Package compressor - gzip для тел запросов и JSON ответов.
package compressor

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/Popolzen/wishlists/internal/pool"
	"github.com/gin-gonic/gin"
)

// pooledWriter отвязывает gzip.Writer от ответа при возврате в пул
type pooledWriter struct {
	*gzip.Writer
}

func (p pooledWriter) Reset() {
	p.Writer.Reset(io.Discard)
}

var writers = pool.New(func() pooledWriter {
	return pooledWriter{gzip.NewWriter(io.Discard)}
})

// compressible - сжимаются только текстовые ответы API; картинки уже сжаты
func compressible(contentType string) bool {
	return strings.Contains(contentType, "application/json") || strings.Contains(contentType, "text/html")
}

type gzipWriter struct {
	gin.ResponseWriter
	writer     pooledWriter
	compressed bool
	decided    bool
}

func (g *gzipWriter) decide() {
	if g.decided {
		return
	}
	g.decided = true
	if compressible(g.Header().Get("Content-Type")) {
		g.Header().Set("Content-Encoding", "gzip")
		g.Header().Del("Content-Length")
		g.writer.Writer.Reset(g.ResponseWriter)
		g.compressed = true
	}
}

func (g *gzipWriter) Write(b []byte) (int, error) {
	g.decide()
	if g.compressed {
		return g.writer.Write(b)
	}
	return g.ResponseWriter.Write(b)
}

func (g *gzipWriter) WriteString(s string) (int, error) {
	return g.Write([]byte(s))
}

// Close дописывает gzip поток и возвращает writer в пул
func (g *gzipWriter) Close() error {
	var err error
	if g.compressed {
		err = g.writer.Close()
	}
	writers.Put(g.writer)
	return err
}

// Compresser обрабатывает gzip сжатие
func Compresser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.Contains(strings.ToLower(c.Request.Header.Get("Content-Encoding")), "gzip") {
			newReader, err := gzip.NewReader(c.Request.Body)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "не удалось распаковать тело запроса"})
				return
			}
			c.Request.Body = newReader
			defer newReader.Close()
		}

		if strings.Contains(strings.ToLower(c.Request.Header.Get("Accept-Encoding")), "gzip") {
			gzipResp := &gzipWriter{
				ResponseWriter: c.Writer,
				writer:         writers.Get(),
			}
			c.Writer = gzipResp
			defer gzipResp.Close()
		}

		c.Next()
	}
}
