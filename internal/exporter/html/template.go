package html

// ReportTemplate renders the consolidated material list as a standalone page
const ReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Material Takeoff - {{.GeneratedAt}}</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background: #f5f7fa;
            color: #2c3e50;
            line-height: 1.6;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
        }

        header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 40px 20px;
            margin-bottom: 30px;
            border-radius: 8px;
            box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);
        }

        header h1 {
            font-size: 2.5em;
            margin-bottom: 10px;
        }

        header p {
            font-size: 1.1em;
            opacity: 0.9;
        }

        .summary {
            background: white;
            padding: 20px;
            border-radius: 8px;
            margin-bottom: 30px;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.05);
        }

        .stats {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 15px;
        }

        .stat-card {
            background: #f8f9fa;
            padding: 15px;
            border-radius: 6px;
            border-left: 4px solid #667eea;
        }

        .stat-card .label {
            font-size: 0.9em;
            color: #6c757d;
            margin-bottom: 5px;
        }

        .stat-card .value {
            font-size: 1.8em;
            font-weight: bold;
            color: #2c3e50;
        }

        table {
            width: 100%;
            border-collapse: collapse;
            background: white;
            border-radius: 8px;
            overflow: hidden;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.05);
        }

        th {
            background: #667eea;
            color: white;
            text-align: left;
            padding: 12px 15px;
            font-size: 0.9em;
            text-transform: uppercase;
        }

        td {
            padding: 10px 15px;
            border-bottom: 1px solid #e9ecef;
            vertical-align: top;
        }

        tr:last-child td {
            border-bottom: none;
        }

        tr:hover td {
            background: #f8f9fa;
        }

        td.qty {
            text-align: right;
            font-variant-numeric: tabular-nums;
            white-space: nowrap;
        }

        td.origin {
            color: #757575;
            font-style: italic;
            font-size: 0.85em;
        }

        .failures {
            background: #fff3f3;
            border-left: 4px solid #d32f2f;
            padding: 15px 20px;
            border-radius: 6px;
            margin-bottom: 30px;
        }

        .failures h2 {
            color: #d32f2f;
            font-size: 1.1em;
            margin-bottom: 8px;
        }

        footer {
            text-align: center;
            color: #6c757d;
            font-size: 0.85em;
            margin: 30px 0;
        }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>Material Takeoff</h1>
            <p>Consolidated quantities extracted on {{.GeneratedAt}}</p>
        </header>

        <div class="summary">
            <div class="stats">
                <div class="stat-card">
                    <div class="label">Workbooks Processed</div>
                    <div class="value">{{.FilesProcessed}}</div>
                </div>
                <div class="stat-card">
                    <div class="label">Rows Extracted</div>
                    <div class="value">{{.TotalRows}}</div>
                </div>
                <div class="stat-card">
                    <div class="label">Distinct Materials</div>
                    <div class="value">{{.TotalDescription}}</div>
                </div>
            </div>
        </div>

        {{if .Failures}}
        <div class="failures">
            <h2>Unreadable Workbooks ({{.TotalFailures}})</h2>
            {{range .Failures}}<div>{{.}}</div>{{end}}
        </div>
        {{end}}

        <table>
            <thead>
                <tr>
                    <th>Internal Code</th>
                    <th>Client Code</th>
                    <th>Description</th>
                    <th>Quantity</th>
                    <th>Unit</th>
                    <th>Drawings</th>
                    <th>Sources</th>
                </tr>
            </thead>
            <tbody>
                {{range .Rows}}
                <tr>
                    <td>{{.CodeInternal}}</td>
                    <td>{{.CodeClient}}</td>
                    <td>{{.Description}}</td>
                    <td class="qty">{{quantity .Quantity}}</td>
                    <td>{{.Unit}}</td>
                    <td class="origin">{{.Drawings}}</td>
                    <td class="origin">{{.Sources}}</td>
                </tr>
                {{end}}
            </tbody>
        </table>

        <footer>Generated by Takeoff</footer>
    </div>
</body>
</html>
`
