package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"routeplanner/internal/models/request_models"
)

const routeSystemPrompt = `你是一个专业的旅行路线规划助手。根据用户给出的出发地、目的地、预算、交通方式、节奏和兴趣权重，生成多套可执行的旅行方案。

你必须严格按照以下 JSON 结构返回，不要包含任何其他文字或 markdown 标记，只输出一个合法 JSON 对象。每个景点/活动必须包含经纬度 lng、lat（高德/GCJ-02 坐标系，中国境内使用）：

{
  "variants": [
    {
      "id": "a",
      "name": "方案 A（文化优先）",
      "days": [
        {
          "dayIndex": 1,
          "date": "YYYY-MM-DD",
          "durationMinutes": 300,
          "distanceKm": 15,
          "commuteMinutes": 30,
          "items": [
            {
              "id": "唯一短id",
              "name": "景点或活动名称",
              "image": "https://picsum.photos/seed/poi1/320/180",
              "stayMinutes": 120,
              "tags": ["文化", "历史"],
              "lng": 120.155,
              "lat": 30.274
            }
          ]
        }
      ]
    },
    {
      "id": "b",
      "name": "方案 B（自然优先）",
      "days": [ ... ]
    },
    {
      "id": "c",
      "name": "方案 C（轻松休闲）",
      "days": [ ... ]
    }
  ]
}

要求：
1. 必须返回 3 个方案（id 为 a、b、c），名称体现不同侧重（文化/自然/休闲等）。
2. days 的日期从用户给出的 startDate 连续到 endDate，每天 2～4 个景点/活动，且必须是目的地城市真实存在的景点或合理活动。
3. 每个 item 的 name 必须是具体景点或活动名，tags 为 2～3 个标签，stayMinutes 合理（30～240）。
4. 每个 item 必须包含 lng（经度）和 lat（纬度），使用高德/GCJ-02 坐标系。请根据景点的真实地理位置填写准确或近似的经纬度，以便前端地图展示。例如：西湖约 120.155, 30.274；故宫约 116.397, 39.916；外滩约 121.490, 31.239。
5. 只输出上述 JSON，不要 markdown 代码块包裹。`

const routeUserPromptTemplate = `请根据以下条件生成 3 套旅行方案（严格按约定 JSON 输出）：

- 出发地：%s
- 目的地：%s
- 出发日期：%s
- 结束日期：%s
- 总预算（元）：%d
- 人数：%d
- 交通方式：%s（public=公共交通，drive=自驾，mixed=混合）
- 节奏：%s（relaxed=轻松，moderate=适中，high=高强度）
- 兴趣权重（0～100）：%s

请让方案中的景点、活动与目的地和用户偏好一致，且每天行程合理。日期必须为 YYYY-MM-DD，从出发日期连续到结束日期。
`

func buildRouteUserPrompt(req request_models.ItineraryRequest) string {
	return fmt.Sprintf(routeUserPromptTemplate,
		req.DepartureCity,
		strings.Join(req.Destinations, "、"),
		req.StartDate.String(),
		req.EndDate.String(),
		req.BudgetOrDefault(),
		req.PeopleOrDefault(),
		req.TransportOrDefault(),
		req.IntensityOrDefault(),
		interestWeightsJSON(req.InterestWeights),
	)
}

// interestWeightsJSON passes the weights through untouched; keys come out sorted.
func interestWeightsJSON(weights map[string]int) string {
	if len(weights) == 0 {
		return "{}"
	}
	b, err := json.Marshal(weights)
	if err != nil {
		return "{}"
	}
	return string(b)
}
