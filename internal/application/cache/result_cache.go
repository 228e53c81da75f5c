package cache

import (
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	ttlworker "github.com/FloatTech/ttl"

	"github.com/easayliu/yadisk-relay/internal/application/contracts"
	"github.com/easayliu/yadisk-relay/internal/domain/services/file"
)

// DefaultTTL 列表结果的默认缓存时间
const DefaultTTL = 300 * time.Second

type entry struct {
	response contracts.ListFilesResponse
	storedAt time.Time
}

// ResultCache 列表结果缓存，键由请求参数决定
// 只缓存成功结果
type ResultCache struct {
	ttl     time.Duration
	enabled bool
	closed  atomic.Bool
	mu      sync.RWMutex // 保护entries与Close之间的并发
	entries *ttlworker.Cache[string, *entry]
}

// NewResultCache 创建缓存；ttl<=0 或 enabled=false 时所有读取都未命中
func NewResultCache(ttl time.Duration, enabled bool) *ResultCache {
	if ttl <= 0 {
		enabled = false
		ttl = DefaultTTL
	}
	return &ResultCache{
		ttl:     ttl,
		enabled: enabled,
		entries: ttlworker.NewCache[string, *entry](ttl),
	}
}

// Key 生成缓存键：参数排序后编码，同一组参数总是得到同一个键
func Key(req contracts.ListFilesRequest, limit int) string {
	params := url.Values{}
	params.Set("public_key", req.PublicKey)
	params.Set("file_type", file.NormalizeFileType(req.FileType))
	if req.Path != "" {
		params.Set("path", req.Path)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	return params.Encode()
}

// Enabled 缓存是否生效
func (c *ResultCache) Enabled() bool {
	return c != nil && c.enabled && !c.closed.Load()
}

// TTL 缓存时间
func (c *ResultCache) TTL() time.Duration {
	return c.ttl
}

// Get 读取缓存，返回副本
func (c *ResultCache) Get(key string) (*contracts.ListFilesResponse, bool) {
	if !c.Enabled() {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed.Load() {
		return nil, false
	}
	e := c.entries.Get(key)
	if e == nil || time.Since(e.storedAt) >= c.ttl {
		return nil, false
	}
	resp := e.response
	return &resp, true
}

// Set 写入缓存
func (c *ResultCache) Set(key string, resp *contracts.ListFilesResponse) {
	if !c.Enabled() || resp == nil {
		return
	}
	stored := *resp
	stored.Cached = false

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed.Load() {
		return
	}
	c.entries.Set(key, &entry{response: stored, storedAt: time.Now()})
}

// Invalidate 删除单个键
func (c *ResultCache) Invalidate(key string) {
	if c == nil {
		return
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed.Load() {
		return
	}
	c.entries.Delete(key)
}

// Close 关闭缓存并停止过期清理协程，之后的读写全部跳过；可重复调用
func (c *ResultCache) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	c.entries.Destroy()
}
