package cache

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ArenaRevenue/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const headerCache = "X-Cache"

// captureWriter 转发响应的同时保留一份 body，超过 limit 的部分不保留
type captureWriter struct {
	gin.ResponseWriter
	buf   bytes.Buffer
	size  int64
	limit int64
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if cw.limit <= 0 {
		cw.buf.Write(b)
	} else if remain := cw.limit - cw.size; remain > 0 {
		if int64(len(b)) <= remain {
			cw.buf.Write(b)
		} else {
			cw.buf.Write(b[:remain])
		}
	}
	cw.size += int64(len(b))
	return cw.ResponseWriter.Write(b)
}

func (cw *captureWriter) WriteString(s string) (int, error) {
	return cw.Write([]byte(s))
}

// keyFor 缓存键 = 前缀:数据版本:sha1(路由+查询串)，数据重新加载后旧键自然失效
func keyFor(prefix, version string, c *gin.Context) string {
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	sum := sha1.Sum([]byte("route:" + route + ":q:" + c.Request.URL.RawQuery))
	return fmt.Sprintf("%s:%s:%x", prefix, version, sum[:])
}

// encodePayload 格式：[4字节状态码][4字节header长度][header JSON][body]
func encodePayload(status int, header http.Header, body []byte) ([]byte, error) {
	hdrJSON, err := json.Marshal(header)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 8+len(hdrJSON)+len(body))
	binary.BigEndian.PutUint32(out[0:4], uint32(status))
	binary.BigEndian.PutUint32(out[4:8], uint32(len(hdrJSON)))
	copy(out[8:], hdrJSON)
	copy(out[8+len(hdrJSON):], body)
	return out, nil
}

func decodePayload(bs []byte) (status int, header http.Header, body []byte, ok bool) {
	if len(bs) < 8 {
		return 0, nil, nil, false
	}
	status = int(binary.BigEndian.Uint32(bs[0:4]))
	hlen := int(binary.BigEndian.Uint32(bs[4:8]))
	if hlen < 0 || 8+hlen > len(bs) {
		return 0, nil, nil, false
	}
	header = make(http.Header)
	if hlen > 0 {
		if err := json.Unmarshal(bs[8:8+hlen], &header); err != nil {
			return 0, nil, nil, false
		}
	}
	return status, header, bs[8+hlen:], true
}

// Middleware 缓存 GET 请求的 200 响应。
// rdb 为 nil 或缓存关闭时直接放行；Redis 出错只记录日志，不影响请求。
func Middleware(cfg config.CacheConfig, rdb *redis.Client, version func() string, logger *logrus.Logger) gin.HandlerFunc {
	if !cfg.Enabled || rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	maxBody := int64(cfg.MaxBodyBytes)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		ctx := c.Request.Context()
		key := keyFor(cfg.Prefix, version(), c)

		if bs, err := rdb.Get(ctx, key).Bytes(); err == nil {
			if status, hdr, body, ok := decodePayload(bs); ok {
				for k, vals := range hdr {
					if strings.EqualFold(k, "Content-Length") || strings.EqualFold(k, headerCache) {
						continue
					}
					for _, v := range vals {
						c.Writer.Header().Add(k, v)
					}
				}
				c.Header(headerCache, "HIT")
				c.Status(status)
				if len(body) > 0 {
					_, _ = c.Writer.Write(body)
				}
				c.Abort()
				return
			}
		} else if !errors.Is(err, redis.Nil) {
			logger.WithError(err).Warn("读取响应缓存失败")
		}

		cw := &captureWriter{ResponseWriter: c.Writer, limit: maxBody}
		c.Writer = cw
		c.Header(headerCache, "MISS")
		c.Next()

		if cw.Status() != http.StatusOK {
			return
		}
		// 截断的响应不缓存
		if maxBody > 0 && cw.size > maxBody {
			return
		}
		hdr := c.Writer.Header().Clone()
		hdr.Del(headerCache)
		payload, err := encodePayload(cw.Status(), hdr, cw.buf.Bytes())
		if err != nil {
			return
		}
		if err := rdb.SetEx(context.Background(), key, payload, ttl).Err(); err != nil {
			logger.WithError(err).Warn("写入响应缓存失败")
		}
	}
}
