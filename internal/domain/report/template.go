package report

import (
	"html/template"
	"io"
)

var reportTmpl = template.Must(template.New("report").Parse(reportHTML))

// RenderHTML writes the summary as a printable HTML document.
func RenderHTML(w io.Writer, sum *Summary) error {
	return reportTmpl.Execute(w, sum)
}

const reportHTML = `<!DOCTYPE html>
<html lang="tr">
<head>
<meta charset="utf-8">
<title>Hasta Raporu - {{.Patient.FirstName}} {{.Patient.LastName}}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { border-bottom: 2px solid #444; padding-bottom: .2em; }
h2 { margin-top: 1.5em; color: #444; }
table { border-collapse: collapse; margin-top: .5em; }
th, td { border: 1px solid #999; padding: .3em .8em; text-align: left; }
th { background: #eee; }
.empty { color: #888; font-style: italic; }
</style>
</head>
<body>
<h1>Hasta Raporu</h1>

<h2>Kimlik</h2>
<table>
<tr><th>TC Kimlik No</th><td>{{.Patient.NationalID}}</td></tr>
<tr><th>Ad</th><td>{{.Patient.FirstName}}</td></tr>
<tr><th>Soyad</th><td>{{.Patient.LastName}}</td></tr>
{{if .Patient.BirthDate}}<tr><th>Do&#287;um Tarihi</th><td>{{.Patient.BirthDate}}</td></tr>{{end}}
{{if .Patient.Ward}}<tr><th>Servis</th><td>{{.Patient.Ward}}</td></tr>{{end}}
</table>

<h2>K&#252;lt&#252;rler ve Antibiyogram</h2>
{{if .Cultures}}
{{range .Cultures}}
<h3>{{.Culture.Organism}}{{if .Culture.SpecimenSource}} ({{.Culture.SpecimenSource}}){{end}}</h3>
{{if .Results}}
<table>
<tr><th>Antibiyotik</th><th>Sonu&#231;</th></tr>
{{range .Results}}<tr><td>{{.Antibiotic}}</td><td>{{.Outcome}}</td></tr>
{{end}}</table>
{{else}}<p class="empty">Antibiyogram sonucu yok.</p>{{end}}
{{end}}
{{else}}<p class="empty">Kay&#305;tl&#305; k&#252;lt&#252;r yok.</p>{{end}}

<h2>&#304;la&#231; Tedavileri</h2>
{{if .DrugCourses}}
<table>
<tr><th>&#304;la&#231;</th><th>Ba&#351;lang&#305;&#231;</th><th>Biti&#351;</th><th>Doz</th></tr>
{{range .DrugCourses}}<tr><td>{{.Drug}}</td><td>{{.StartDate}}</td><td>{{if .EndDate}}{{.EndDate}}{{else}}devam ediyor{{end}}</td><td>{{if .Dosage}}{{.Dosage}}{{end}}</td></tr>
{{end}}</table>
{{else}}<p class="empty">Kay&#305;tl&#305; tedavi yok.</p>{{end}}

<h2>Son Laboratuvar Paneli</h2>
{{if .LabPanel}}
<p>Tarih: {{.LabPanel.CreatedAt}}</p>
<table>
{{if .LabPanel.CRP}}<tr><th>CRP</th><td>{{.LabPanel.CRP}}</td></tr>{{end}}
{{if .LabPanel.WBC}}<tr><th>WBC</th><td>{{.LabPanel.WBC}}</td></tr>{{end}}
{{if .LabPanel.Lymphocytes}}<tr><th>Lenfosit</th><td>{{.LabPanel.Lymphocytes}}</td></tr>{{end}}
{{if .LabPanel.Neutrophils}}<tr><th>N&#246;trofil</th><td>{{.LabPanel.Neutrophils}}</td></tr>{{end}}
{{if .LabPanel.PCT}}<tr><th>Prokalsitonin</th><td>{{.LabPanel.PCT}}</td></tr>{{end}}
{{if .LabPanel.Glucose}}<tr><th>Glukoz</th><td>{{.LabPanel.Glucose}}</td></tr>{{end}}
{{if .LabPanel.Sodium}}<tr><th>Sodyum</th><td>{{.LabPanel.Sodium}}</td></tr>{{end}}
{{if .LabPanel.Chloride}}<tr><th>Klor</th><td>{{.LabPanel.Chloride}}</td></tr>{{end}}
{{if .LabPanel.Phosphorus}}<tr><th>Fosfor</th><td>{{.LabPanel.Phosphorus}}</td></tr>{{end}}
{{if .LabPanel.Magnesium}}<tr><th>Magnezyum</th><td>{{.LabPanel.Magnesium}}</td></tr>{{end}}
{{if .LabPanel.AST}}<tr><th>AST</th><td>{{.LabPanel.AST}}</td></tr>{{end}}
{{if .LabPanel.ALT}}<tr><th>ALT</th><td>{{.LabPanel.ALT}}</td></tr>{{end}}
{{if .LabPanel.GGT}}<tr><th>GGT</th><td>{{.LabPanel.GGT}}</td></tr>{{end}}
{{if .LabPanel.ALP}}<tr><th>ALP</th><td>{{.LabPanel.ALP}}</td></tr>{{end}}
{{if .LabPanel.TotalBilirubin}}<tr><th>Total Bilirubin</th><td>{{.LabPanel.TotalBilirubin}}</td></tr>{{end}}
{{if .LabPanel.DirectBilirubin}}<tr><th>Direkt Bilirubin</th><td>{{.LabPanel.DirectBilirubin}}</td></tr>{{end}}
{{if .LabPanel.Albumin}}<tr><th>Alb&#252;min</th><td>{{.LabPanel.Albumin}}</td></tr>{{end}}
{{if .LabPanel.Creatinine}}<tr><th>Kreatinin</th><td>{{.LabPanel.Creatinine}}</td></tr>{{end}}
{{if .LabPanel.BUN}}<tr><th>BUN</th><td>{{.LabPanel.BUN}}</td></tr>{{end}}
{{if .LabPanel.EGFR}}<tr><th>eGFR</th><td>{{.LabPanel.EGFR}}</td></tr>{{end}}
{{if .LabPanel.PPD}}<tr><th>PPD</th><td>{{.LabPanel.PPD}}</td></tr>{{end}}
</table>
{{else}}<p class="empty">Kay&#305;tl&#305; laboratuvar paneli yok.</p>{{end}}

<h2>Anamnez</h2>
{{if .Questionnaire}}
<p>Tarih: {{.Questionnaire.CreatedAt}}</p>
<table>
{{if .Questionnaire.Fever}}<tr><th>Ate&#351;</th><td>{{.Questionnaire.Fever}}</td></tr>{{end}}
{{if .Questionnaire.Cough}}<tr><th>&#214;ks&#252;r&#252;k</th><td>{{.Questionnaire.Cough}}</td></tr>{{end}}
{{if .Questionnaire.NightSweats}}<tr><th>Gece Terlemesi</th><td>{{.Questionnaire.NightSweats}}</td></tr>{{end}}
{{if .Questionnaire.WeightLoss}}<tr><th>Kilo Kayb&#305;</th><td>{{.Questionnaire.WeightLoss}}</td></tr>{{end}}
{{if .Questionnaire.FamilyTB}}<tr><th>Ailede T&#252;berk&#252;loz</th><td>{{.Questionnaire.FamilyTB}}</td></tr>{{end}}
{{if .Questionnaire.Allergy}}<tr><th>Alerji</th><td>{{.Questionnaire.Allergy}}{{if .Questionnaire.AllergyNote}} - {{.Questionnaire.AllergyNote}}{{end}}</td></tr>{{end}}
{{if .Questionnaire.BloodPressure}}<tr><th>Tansiyon</th><td>{{.Questionnaire.BloodPressure}}</td></tr>{{end}}
{{if .Questionnaire.Pulse}}<tr><th>Nab&#305;z</th><td>{{.Questionnaire.Pulse}}</td></tr>{{end}}
{{if .Questionnaire.Temperature}}<tr><th>V&#252;cut Is&#305;s&#305;</th><td>{{.Questionnaire.Temperature}}</td></tr>{{end}}
{{if .Questionnaire.GeneralCondition}}<tr><th>Genel Durum</th><td>{{.Questionnaire.GeneralCondition}}</td></tr>{{end}}
{{if .Questionnaire.ClinicalNotes}}<tr><th>Klinik Notlar</th><td>{{.Questionnaire.ClinicalNotes}}</td></tr>{{end}}
</table>
{{else}}<p class="empty">Kay&#305;tl&#305; anamnez yok.</p>{{end}}

</body>
</html>
`
