package services

import "strings"

type RouteTheme string

const (
	ThemeCulture RouteTheme = "culture"
	ThemeNature  RouteTheme = "nature"
	ThemeRelax   RouteTheme = "relax"
)

type poiSeed struct {
	name string
	tags []string
	stay int
}

type themePools struct {
	culture []poiSeed
	nature  []poiSeed
	relax   []poiSeed
}

func (p themePools) forTheme(theme RouteTheme) []poiSeed {
	switch theme {
	case ThemeCulture:
		return p.culture
	case ThemeNature:
		return p.nature
	default:
		return p.relax
	}
}

func seed(name string, stay int, tags ...string) poiSeed {
	return poiSeed{name: name, tags: tags, stay: stay}
}

var (
	suzhouCulture = []poiSeed{
		seed("拙政园", 150, "文化", "园林"),
		seed("苏州博物馆", 120, "文化", "历史"),
		seed("狮子林", 90, "文化", "园林"),
		seed("虎丘", 120, "文化", "自然"),
		seed("寒山寺", 90, "文化", "宗教"),
	}
	suzhouNature = []poiSeed{
		seed("金鸡湖", 120, "自然", "休闲"),
		seed("阳澄湖", 150, "自然", "美食"),
		seed("太湖湿地", 180, "自然", "生态"),
		seed("平江路", 90, "自然", "文化"),
		seed("同里古镇", 150, "自然", "古镇"),
	}
	suzhouRelax = []poiSeed{
		seed("平江路漫步", 90, "休闲", "文化"),
		seed("山塘街", 120, "休闲", "美食"),
		seed("观前街", 90, "休闲", "购物"),
		seed("苏州评弹", 60, "休闲", "文化"),
		seed("苏帮菜馆", 90, "美食", "文化"),
	}

	shanghaiCulture = []poiSeed{
		seed("豫园", 120, "文化", "园林"),
		seed("上海博物馆", 150, "文化", "历史"),
		seed("中共一大会址", 90, "文化", "历史"),
		seed("田子坊", 90, "文化", "创意"),
		seed("新天地", 120, "文化", "休闲"),
	}
	shanghaiNature = []poiSeed{
		seed("外滩", 120, "自然", "景观"),
		seed("世纪公园", 150, "自然", "休闲"),
		seed("朱家角古镇", 180, "自然", "古镇"),
		seed("滨江森林公园", 120, "自然", "生态"),
		seed("东方明珠", 90, "自然", "地标"),
	}
	shanghaiRelax = []poiSeed{
		seed("南京路步行街", 120, "休闲", "购物"),
		seed("田子坊", 90, "休闲", "美食"),
		seed("新天地", 90, "休闲", "文化"),
		seed("外滩夜景", 60, "休闲", "景观"),
		seed("城隍庙小吃", 90, "美食", "文化"),
	}

	beijingCulture = []poiSeed{
		seed("故宫博物院", 180, "文化", "历史"),
		seed("国家博物馆", 120, "文化", "历史"),
		seed("南锣鼓巷", 90, "文化", "美食"),
		seed("颐和园", 150, "文化", "自然"),
		seed("雍和宫", 90, "文化", "宗教"),
	}
	beijingNature = []poiSeed{
		seed("颐和园", 150, "自然", "文化"),
		seed("北海公园", 120, "自然", "休闲"),
		seed("香山", 180, "自然", "徒步"),
		seed("奥森公园", 120, "自然", "生态"),
		seed("什刹海", 90, "自然", "文化"),
	}

	hangzhouCulture = []poiSeed{
		seed("灵隐寺", 90, "文化", "宗教"),
		seed("宋城", 180, "文化", "演艺"),
		seed("河坊街", 90, "文化", "美食"),
		seed("中国美院", 120, "文化", "艺术"),
		seed("六和塔", 60, "文化", "历史"),
	}
	hangzhouNature = []poiSeed{
		seed("西湖", 120, "自然", "休闲"),
		seed("灵隐寺", 90, "自然", "文化"),
		seed("西溪湿地", 180, "自然", "生态"),
		seed("九溪烟树", 90, "自然", "徒步"),
		seed("龙井村", 120, "自然", "美食"),
	}

	genericRelax = []poiSeed{
		seed("古镇漫步", 120, "休闲", "文化"),
		seed("温泉酒店", 180, "休闲", "放松"),
		seed("咖啡馆", 60, "休闲", "美食"),
		seed("夜市", 90, "美食", "购物"),
		seed("海边栈道", 90, "休闲", "自然"),
	}
)

type cityPools struct {
	match string
	pools themePools
}

// cityPoolTable is scanned in order; the first entry whose match is a substring
// of the destination wins.
var cityPoolTable = []cityPools{
	{match: "苏州", pools: themePools{culture: suzhouCulture, nature: suzhouNature, relax: suzhouRelax}},
	{match: "上海", pools: themePools{culture: shanghaiCulture, nature: shanghaiNature, relax: shanghaiRelax}},
	{match: "北京", pools: themePools{culture: beijingCulture, nature: beijingNature, relax: genericRelax}},
	{match: "杭州", pools: themePools{culture: hangzhouCulture, nature: hangzhouNature, relax: genericRelax}},
}

var defaultPools = themePools{culture: beijingCulture, nature: hangzhouNature, relax: genericRelax}

func poolsForDestination(destination string) themePools {
	city := strings.TrimSpace(destination)
	for _, entry := range cityPoolTable {
		if strings.Contains(city, entry.match) {
			return entry.pools
		}
	}
	return defaultPools
}
