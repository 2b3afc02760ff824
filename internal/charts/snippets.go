package charts

import (
	"encoding/json"
	"fmt"

	"github.com/sev7enITA/DDPFramework/internal/chartkit"
	"github.com/sev7enITA/DDPFramework/internal/models"
)

// ChartSnippet represents an embeddable ECharts chart fragment.
// Div contains a single root <div id="..."></div>, Script the <script> block
// that initializes the chart in that div, and HTML the complete snippet with
// both combined for template substitution. The snippets are the interactive
// surface for hover templates, which static raster output cannot carry.
type ChartSnippet struct {
	ID     string
	Title  string
	Div    string
	Script string
	HTML   string
}

func buildSnippet(id, title string, option map[string]interface{}) (ChartSnippet, error) {
	optJSON, err := json.Marshal(option)
	if err != nil {
		return ChartSnippet{}, fmt.Errorf("failed to marshal %s option: %w", id, err)
	}

	div := fmt.Sprintf("<div id=\"%s\" style=\"width:100%%;height:420px;\"></div>", id)
	script := fmt.Sprintf(`<script>(function(){var el=document.getElementById('%s');if(!el)return;var c=echarts.init(el);var option=%s;c.setOption(option);window.addEventListener('resize',function(){c.resize();});})();</script>`, id, string(optJSON))
	completeHTML := fmt.Sprintf(`<div class="chart-container">
	<h3>%s</h3>
	%s
</div>
%s`, title, div, script)

	return ChartSnippet{ID: id, Title: title, Div: div, Script: script, HTML: completeHTML}, nil
}

// TimelineSnippet builds the interactive variant of the threat timeline. One
// scatter series per record carries the primitive's hover template as its
// tooltip, so the full threat names survive even where labels are
// abbreviated.
func (cg *ChartGenerator) TimelineSnippet() (ChartSnippet, error) {
	fig, err := cg.TimelineFigure()
	if err != nil {
		return ChartSnippet{}, err
	}

	var series []interface{}
	for _, prim := range fig.Primitives() {
		marker, ok := prim.(*chartkit.Marker)
		if ok && marker.Hover() != "" {
			item := map[string]interface{}{
				"type":       "scatter",
				"symbolSize": marker.Style.Size,
				"itemStyle": map[string]interface{}{
					"color":       rgbaHex(marker.Style),
					"borderColor": borderHex(marker.Style),
					"borderWidth": marker.Style.BorderWidth,
				},
				"data":    []interface{}{[]float64{marker.X, marker.Y}},
				"tooltip": map[string]interface{}{"formatter": marker.Hover()},
			}
			if marker.Symbol == chartkit.SymbolDiamond {
				item["symbol"] = "diamond"
			}
			series = append(series, item)
		}
	}

	option := map[string]interface{}{
		"tooltip": map[string]interface{}{"trigger": "item"},
		"grid":    map[string]interface{}{"left": "6%", "right": "4%", "bottom": "10%", "containLabel": true},
		"xAxis":   map[string]interface{}{"type": "value", "min": 2019, "max": 2036, "interval": 2},
		"yAxis":   map[string]interface{}{"type": "value", "min": 0, "max": 2.2, "show": false},
		"series":  series,
	}
	return buildSnippet("chart-threat-timeline", "Privacy Threats Evolution & DDP Response", option)
}

// ComplianceSnippet builds the interactive compliance bar chart, with the
// three target thresholds as markLines.
func (cg *ChartGenerator) ComplianceSnippet() (ChartSnippet, error) {
	entries := models.ComplianceEntries()
	palette := models.ComplianceBandPalette()

	labels := make([]string, 0, len(entries))
	seriesData := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		labels = append(labels, e.Regulation)
		seriesData = append(seriesData, map[string]interface{}{
			"value": e.Coverage,
			"itemStyle": map[string]interface{}{
				"color": palette[models.ComplianceBand(e.Coverage)],
			},
			"tooltip": map[string]interface{}{
				"formatter": fmt.Sprintf("<b>%s</b><br>Coverage: %.0f%%<br>%d violations", e.Regulation, e.Coverage, e.Violations),
			},
		})
	}

	markLines := []interface{}{
		map[string]interface{}{"yAxis": 95, "label": map[string]interface{}{"formatter": "Excellent: 95%+"}, "lineStyle": map[string]interface{}{"color": "#2E8B57", "type": "solid"}},
		map[string]interface{}{"yAxis": 90, "label": map[string]interface{}{"formatter": "Good: 90%+"}, "lineStyle": map[string]interface{}{"color": "#1FB8CD", "type": "dashed"}},
		map[string]interface{}{"yAxis": 85, "label": map[string]interface{}{"formatter": "Warning: 85%+"}, "lineStyle": map[string]interface{}{"color": "#D2BA4C", "type": "dotted"}},
	}

	option := map[string]interface{}{
		"tooltip": map[string]interface{}{"trigger": "item", "axisPointer": map[string]interface{}{"type": "shadow"}},
		"grid":    map[string]interface{}{"left": "8%", "right": "4%", "bottom": "8%", "containLabel": true},
		"xAxis":   map[string]interface{}{"type": "category", "data": labels},
		"yAxis":   map[string]interface{}{"type": "value", "min": 80, "max": 100, "axisLabel": map[string]interface{}{"formatter": "{value}%"}},
		"series": []interface{}{map[string]interface{}{
			"type":     "bar",
			"barWidth": "40%",
			"data":     seriesData,
			"markLine": map[string]interface{}{"symbol": "none", "data": markLines},
		}},
	}
	return buildSnippet("chart-compliance-coverage", "Privacy Compliance Coverage", option)
}

// GenerateSnippets builds every interactive snippet. Like the static charts,
// any failure aborts the whole set.
func (cg *ChartGenerator) GenerateSnippets() ([]ChartSnippet, error) {
	timeline, err := cg.TimelineSnippet()
	if err != nil {
		return nil, fmt.Errorf("failed to build timeline snippet: %w", err)
	}
	compliance, err := cg.ComplianceSnippet()
	if err != nil {
		return nil, fmt.Errorf("failed to build compliance snippet: %w", err)
	}
	return []ChartSnippet{timeline, compliance}, nil
}

func rgbaHex(s chartkit.StyleEncoding) string {
	return fmt.Sprintf("#%02X%02X%02X", s.Color.R, s.Color.G, s.Color.B)
}

func borderHex(s chartkit.StyleEncoding) string {
	return fmt.Sprintf("#%02X%02X%02X", s.BorderColor.R, s.BorderColor.G, s.BorderColor.B)
}
