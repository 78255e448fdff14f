package report

import (
	"bytes"
	"html/template"
)

var page = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Service Report {{.Report.ReportID}}</title>
<style>
body { font-family: sans-serif; color: #000; background: #fff; padding: 2rem; }
.frame { border: 2px solid #000; padding: 1.5rem; }
header { text-align: center; margin-bottom: 1.5rem; }
h2 { border-top: 2px solid #000; border-bottom: 2px solid #000; padding: .5rem 0; }
.meta { display: grid; grid-template-columns: 1fr 1fr; gap: 1rem 2rem; border-bottom: 2px solid #000; padding-bottom: 1rem; margin-bottom: 1.5rem; }
.wide { grid-column: span 2; }
table { width: 100%; border-collapse: collapse; margin-bottom: 1.5rem; }
td { border: 1px solid #000; padding: .5rem; vertical-align: top; }
td.label { font-weight: 600; width: 30%; }
footer { display: grid; grid-template-columns: 1fr 1fr; gap: 2rem; padding-top: 2.5rem; }
footer p { border-top: 2px solid #000; padding-top: .5rem; font-weight: 600; }
</style>
</head>
<body{{if .AutoPrint}} onload="window.print()"{{end}}>
<div class="frame">
<header>
<h1>{{.Company}}</h1>
<p>{{.CompanyAddress}}</p>
<h2>{{.Title}}</h2>
</header>
<section class="meta">
<div><strong>Report ID:</strong> {{.Report.ReportID}}</div>
<div><strong>Date:</strong> {{.Report.Date}}</div>
<div><strong>Customer Name:</strong> {{.Report.CustomerName}}</div>
<div><strong>Assigned Technician:</strong> {{.Report.TechnicianName}}</div>
<div class="wide"><strong>Address:</strong> {{.Report.Address}}</div>
</section>
<h3>Service Details</h3>
<table>
<tr><td class="label">Product Name:</td><td>{{.Report.ProductName}}</td></tr>
<tr><td class="label">Issue Reported:</td><td>{{.Report.Issue}}</td></tr>
<tr><td class="label">Technician Notes:</td><td>{{.Report.TechnicianNotes}}</td></tr>
</table>
<h3>Customer Feedback</h3>
<table>
<tr><td class="label">Rating:</td><td>{{.Report.Rating}}</td></tr>
<tr><td class="label">Remarks:</td><td>{{.Report.Remarks}}</td></tr>
</table>
<footer>
<p>Technician Signature</p>
<p>Customer Signature &amp; Stamp</p>
</footer>
</div>
</body>
</html>
`))

// RenderHTML produces the printable page. autoPrint opens the print dialog on load.
func RenderHTML(r ServiceReport, autoPrint bool) ([]byte, error) {
	var buf bytes.Buffer
	err := page.Execute(&buf, struct {
		Company        string
		CompanyAddress string
		Title          string
		Report         ServiceReport
		AutoPrint      bool
	}{CompanyName, CompanyAddress, Title, r, autoPrint})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NotFoundHTML is shown for an unknown report id.
func NotFoundHTML() []byte {
	return []byte(`<!DOCTYPE html><html lang="en"><body><div style="padding:2.5rem">Report not found.</div></body></html>`)
}
