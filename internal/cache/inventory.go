package cache

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"time"

	"toolverse/internal/catalog"
)

const (
	ToolKeyPrefix      = "tool:%s"
	BlogPostKeyPrefix  = "blog:%s"
	UserToolsKeyPrefix = "user:%s:tools"
	ListKeyPrefix      = "list:%s:v%d:%x"
	VersionKeyPrefix   = "list:%s:version"
)

// List namespaces
const (
	ToolsNamespace = "tools"
	BlogNamespace  = "blog"
)

const (
	ToolTTL      = 10 * time.Minute
	BlogPostTTL  = 10 * time.Minute
	ListTTL      = 2 * time.Minute
	UserToolsTTL = time.Minute
)

func ToolKey(id string) string {
	return fmt.Sprintf(ToolKeyPrefix, id)
}

func BlogPostKey(id string) string {
	return fmt.Sprintf(BlogPostKeyPrefix, id)
}

func UserToolsKey(userID string) string {
	return fmt.Sprintf(UserToolsKeyPrefix, userID)
}

func versionKey(namespace string) string {
	return fmt.Sprintf(VersionKeyPrefix, namespace)
}

// ToolListKey identifies one filtered page of the tool list at a list generation.
func ToolListKey(version int64, f catalog.ToolFilter) string {
	return listKey(ToolsNamespace, version,
		"category="+f.Category,
		"pricing="+f.Pricing,
		"search="+f.Search,
		"featured="+optBool(f.Featured),
		"limit="+optInt(f.Limit),
		"offset="+optInt(f.Offset),
	)
}

// BlogListKey identifies one filtered page of the blog list at a list generation.
func BlogListKey(version int64, f catalog.BlogFilter) string {
	return listKey(BlogNamespace, version,
		"category="+f.Category,
		"featured="+optBool(f.Featured),
		"limit="+optInt(f.Limit),
		"offset="+optInt(f.Offset),
	)
}

func listKey(namespace string, version int64, parts ...string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.Join(parts, "\x00")))
	return fmt.Sprintf(ListKeyPrefix, namespace, version, h.Sum64())
}

func optBool(b *bool) string {
	if b == nil {
		return "-"
	}
	return strconv.FormatBool(*b)
}

func optInt(i *int) string {
	if i == nil {
		return "-"
	}
	return strconv.Itoa(*i)
}
