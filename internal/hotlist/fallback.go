package hotlist

// fallbackChannels lists the channels known to be served by the hotlist
// API, used when live discovery fails.
var fallbackChannels = []string{
	"36kr", "51cto", "acfun", "baidu", "bilibili", "coolapk", "csdn",
	"douban-group", "douban-movie", "douyin", "earthquake", "genshin",
	"hellogithub", "history", "honkai", "hupu", "huxiu", "ifanr",
	"ithome-xijiayi", "ithome", "jianshu", "juejin", "lol", "netease-news",
	"ngabbs", "nodeseek", "qq-news", "sina-news", "sina", "sspai",
	"starrail", "thepaper", "tieba", "toutiao", "v2ex", "weatheralarm",
	"weibo", "weread", "zhihu-daily", "zhihu",
}

// FallbackChannels returns a copy of the fixed fallback channel list.
func FallbackChannels() []string {
	channels := make([]string, len(fallbackChannels))
	copy(channels, fallbackChannels)
	return channels
}
