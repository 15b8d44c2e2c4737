package geo

import "github.com/paulmach/orb"

var defaultPOICoords = map[string]orb.Point{
	// 北京
	"故宫博物院": {116.397, 39.916},
	"国家博物馆": {116.398, 39.904},
	"南锣鼓巷":  {116.404, 39.934},
	"颐和园":   {116.271, 39.999},
	"雍和宫":   {116.417, 39.949},
	"北海公园":  {116.383, 39.924},
	"香山":    {116.193, 39.998},
	"奥森公园":  {116.391, 40.016},
	"什刹海":   {116.382, 39.938},
	"古镇漫步":  {116.397, 39.916},
	"温泉酒店":  {116.397, 39.916},
	"咖啡馆":   {116.397, 39.916},
	"夜市":    {116.397, 39.916},
	"海边栈道":  {116.397, 39.916},

	// 苏州
	"拙政园":   {120.624, 31.323},
	"苏州博物馆": {120.629, 31.321},
	"狮子林":   {120.631, 31.322},
	"虎丘":    {120.573, 31.302},
	"寒山寺":   {120.557, 31.311},
	"金鸡湖":   {120.681, 31.316},
	"阳澄湖":   {120.823, 31.421},
	"太湖湿地":  {120.412, 31.228},
	"平江路":   {120.636, 31.319},
	"同里古镇":  {120.716, 31.161},
	"平江路漫步": {120.636, 31.319},
	"山塘街":   {120.601, 31.318},
	"观前街":   {120.629, 31.315},
	"苏州评弹":  {120.629, 31.315},
	"苏帮菜馆":  {120.629, 31.315},

	// 上海
	"豫园":     {121.491, 31.228},
	"上海博物馆":  {121.473, 31.230},
	"中共一大会址": {121.473, 31.220},
	"田子坊":    {121.464, 31.214},
	"新天地":    {121.474, 31.216},
	"外滩":     {121.490, 31.239},
	"世纪公园":   {121.551, 31.228},
	"朱家角古镇":  {121.050, 31.108},
	"滨江森林公园": {121.558, 31.382},
	"东方明珠":   {121.499, 31.239},
	"南京路步行街": {121.478, 31.238},
	"外滩夜景":   {121.490, 31.239},
	"城隍庙小吃":  {121.491, 31.227},

	// 杭州
	"西湖":      {120.155, 30.274},
	"雷峰塔":     {120.149, 30.231},
	"灵隐寺":     {120.096, 30.241},
	"中国茶叶博物馆": {120.130, 30.257},
	"宋城":      {120.111, 30.206},
	"河坊街":     {120.164, 30.242},
	"西溪湿地":    {120.053, 30.270},
	"龙井村":     {120.109, 30.228},
	"九溪烟树":    {120.123, 30.218},
	"六和塔":     {120.131, 30.197},
	"中国美院":    {120.154, 30.259},
	"断桥残雪":    {120.147, 30.263},
	"苏堤":      {120.142, 30.252},
	"白堤":      {120.148, 30.265},
	"钱塘江":     {120.210, 30.208},
	"千岛湖":     {119.019, 29.605},
}
