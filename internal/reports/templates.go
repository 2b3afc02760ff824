package reports

// indexTemplate is the report index page. Chart images sit next to the page
// inside the report folder, so all asset references stay relative.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>DDP Framework Report - {{.Date}}</title>
    <script src="https://cdn.jsdelivr.net/npm/echarts@5.4.3/dist/echarts.min.js"></script>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f8f9fa;
        }
        .header {
            background: linear-gradient(135deg, #1FB8CD 0%, #2E8B57 100%);
            color: white;
            padding: 30px;
            border-radius: 10px;
            margin-bottom: 30px;
            text-align: center;
        }
        .header h1 {
            margin: 0;
            font-size: 2.5em;
        }
        .header .timestamp {
            opacity: 0.9;
            margin-top: 10px;
        }
        .summary-cards {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(250px, 1fr));
            gap: 20px;
            margin-bottom: 30px;
        }
        .card {
            background: white;
            padding: 20px;
            border-radius: 8px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
            border-left: 4px solid #1FB8CD;
        }
        .card h3 {
            margin-top: 0;
            color: #1FB8CD;
        }
        .metric {
            font-size: 1.5em;
            font-weight: bold;
            color: #333;
        }
        .content {
            background: white;
            padding: 30px;
            border-radius: 8px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
            margin-bottom: 30px;
        }
        .charts-section {
            background: white;
            padding: 30px;
            border-radius: 8px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
            margin-bottom: 30px;
        }
        .chart-container {
            margin-bottom: 40px;
        }
        .chart-container img {
            max-width: 100%;
            height: auto;
        }
        .footer {
            text-align: center;
            color: #666;
            font-size: 0.9em;
            margin-top: 30px;
        }
        h1, h2, h3 { color: #333; }
        h2 { border-bottom: 2px solid #1FB8CD; padding-bottom: 5px; }
        code { background: #f4f4f4; padding: 2px 4px; border-radius: 3px; }
        pre { background: #f4f4f4; padding: 15px; border-radius: 5px; overflow-x: auto; }
        blockquote { border-left: 4px solid #1FB8CD; margin: 0; padding-left: 20px; color: #666; }
        table { border-collapse: collapse; width: 100%; margin: 20px 0; }
        th, td { border: 1px solid #ddd; padding: 12px; text-align: left; }
        th { background-color: #f8f9fa; font-weight: bold; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Dynamic Digital Privacy Framework</h1>
        <div class="timestamp">Generated: {{.GeneratedAt}}</div>
    </div>

    <div class="summary-cards">
        {{range .Metrics}}
        <div class="card">
            <h3>{{.Name}}</h3>
            <div class="metric">{{.Value}}</div>
            <div>Target: {{.Target}}</div>
            <div style="margin-top: 10px;">Trend: {{.Trend}}</div>
        </div>
        {{end}}
    </div>

    <div class="content">
        {{.Content}}
    </div>

    <div class="charts-section">
        <h2>Governance Model</h2>
        <div class="chart-container">
            <img src="governance_flow.svg" alt="Three-tier governance flow" />
        </div>

        <h2>Threat Timeline</h2>
        {{.TimelineChart}}
        <div class="chart-container">
            <img src="threat_timeline.svg" alt="Privacy threats evolution" />
        </div>

        <h2>Compliance Coverage</h2>
        {{.ComplianceChart}}
        <div class="chart-container">
            <img src="compliance_dashboard.svg" alt="Privacy compliance coverage" />
        </div>
    </div>

    <div class="footer">
        <p><a href="dashboard.html">Interactive dashboard</a> |
           <a href="ARCHITECTURE.md">Architecture</a> |
           <a href="IMPLEMENTATION.md">Implementation guide</a> |
           <a href="THREAT_MODEL.md">Threat model</a></p>
        <p>DDP Framework report generator v{{.Version}}</p>
    </div>
</body>
</html>`

// dashboardTemplate wraps the go-echarts fragments into a standalone page.
const dashboardTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>DDP Framework Dashboard - {{.Date}}</title>
    <script src="https://cdn.jsdelivr.net/npm/echarts@5.4.3/dist/echarts.min.js"></script>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            color: #333;
            max-width: 1000px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f8f9fa;
        }
        .chart-container {
            background: white;
            padding: 20px;
            border-radius: 8px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
            margin-bottom: 30px;
        }
        .footer {
            text-align: center;
            color: #666;
            font-size: 0.9em;
        }
    </style>
</head>
<body>
    <h1>DDP Framework Dashboard</h1>

    <div class="chart-container">
        {{.ComplianceChart}}
    </div>

    <div class="chart-container">
        {{.SeverityChart}}
    </div>

    <div class="footer">
        <p><a href="index.html">Back to report</a></p>
    </div>
</body>
</html>`
