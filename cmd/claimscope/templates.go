// cmd/claimscope/templates.go
package main

import (
	"html/template"
	"net/http"
)

// indexData feeds the single-page template
type indexData struct {
	Claim   string
	Warning string
	Result  *CheckResult
}

var indexPage = template.Must(template.New("index").Funcs(template.FuncMap{
	"scoreClass": scoreClass,
}).Parse(indexTemplate))

// scoreClass mirrors the dashboard color scheme: green for credible, orange
// for uncertain, red for dubious
func scoreClass(score int) string {
	switch {
	case score >= 7:
		return "good"
	case score >= 4:
		return "mid"
	default:
		return "bad"
	}
}

// renderIndex renders the claim page
func renderIndex(w http.ResponseWriter, data *indexData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexPage.Execute(w, data); err != nil {
		Logger().Error("template render failed: %v", err)
	}
}

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>ClaimScope - Fake News Detector</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; color: #222; }
h1 { font-size: 1.6rem; }
textarea { width: 100%; min-height: 90px; font-size: 1rem; padding: .5rem; box-sizing: border-box; }
button { margin-top: .5rem; padding: .5rem 1.5rem; font-size: 1rem; cursor: pointer; }
.warning { background: #fff3cd; border: 1px solid #ffeeba; padding: .75rem; margin: 1rem 0; border-radius: 4px; }
.card { border: 1px solid #ddd; border-radius: 6px; padding: 1rem; margin: 1rem 0; }
.metrics { display: flex; gap: 2rem; }
.metric .label { font-size: .8rem; color: #666; text-transform: uppercase; }
.metric .value { font-size: 1.4rem; font-weight: 600; }
.bar { background: #eee; border-radius: 4px; height: 10px; margin-top: .4rem; overflow: hidden; }
.bar span { display: block; height: 100%; }
.good .bar span { background: #2ecc71; }
.mid .bar span { background: #e67e22; }
.bad .bar span { background: #e74c3c; }
.columns { display: flex; gap: 1rem; }
.columns > div { flex: 1; }
.source { margin-bottom: .75rem; }
.source .snippet { color: #555; font-size: .9rem; }
#progress { color: #888; font-style: italic; min-height: 1.2rem; }
ul { margin: .25rem 0; padding-left: 1.25rem; }
</style>
</head>
<body>
<h1>&#128269; ClaimScope</h1>
<p>Analyze news headlines and claims for credibility using AI.</p>

<form method="POST" action="/analyze">
<textarea name="claim" placeholder="Example: Scientists discover new planet made entirely of diamonds">{{.Claim}}</textarea>
<button type="submit">Analyze</button>
</form>
<div id="progress"></div>

{{if .Warning}}<div class="warning">{{.Warning}}</div>{{end}}

{{with .Result}}
<div class="card {{scoreClass .Analysis.CredibilityScore}}">
  <div class="metrics">
    <div class="metric">
      <div class="label">Credibility Score</div>
      <div class="value">{{.Analysis.CredibilityScore}}/10</div>
      <div class="bar"><span style="width: {{.Analysis.CredibilityScore}}0%"></span></div>
    </div>
    <div class="metric">
      <div class="label">Verdict</div>
      <div class="value">{{.Analysis.Verdict}}</div>
    </div>
    <div class="metric">
      <div class="label">Confidence</div>
      <div class="value">{{.Analysis.Confidence}}</div>
    </div>
  </div>
  {{if .Cached}}<p><em>Served from cache.</em></p>{{end}}
</div>

<div class="card">
  <h3>Analysis</h3>
  <p>{{.Analysis.Explanation}}</p>
  {{if .Analysis.KeyFindings}}
  <h4>Key Findings</h4>
  <ul>{{range .Analysis.KeyFindings}}<li>{{.}}</li>{{end}}</ul>
  {{end}}
  <div class="columns">
    <div>
      {{if .Analysis.RedFlags}}
      <h4>&#9888;&#65039; Red Flags</h4>
      <ul>{{range .Analysis.RedFlags}}<li>{{.}}</li>{{end}}</ul>
      {{end}}
    </div>
    <div>
      {{if .Analysis.SupportingEvidence}}
      <h4>&#9989; Supporting Evidence</h4>
      <ul>{{range .Analysis.SupportingEvidence}}<li>{{.}}</li>{{end}}</ul>
      {{end}}
    </div>
  </div>
</div>

<div class="card">
  <h3>&#128240; Sources Found</h3>
  {{range .Sources}}
  <div class="source">
    <a href="{{.Link}}" rel="noopener noreferrer">{{.Title}}</a>
    <div class="snippet">{{.Snippet}}</div>
  </div>
  {{end}}
</div>
{{end}}

<script>
(function () {
  var el = document.getElementById("progress");
  var labels = {
    searching: "Searching for relevant information...",
    analyzing: "Analyzing credibility...",
    done: "",
    failed: "Analysis failed."
  };
  try {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "/ws");
    ws.onmessage = function (msg) {
      var event = JSON.parse(msg.data);
      if (event.stage in labels) { el.textContent = labels[event.stage]; }
    };
  } catch (e) { /* progress display is optional */ }
})();
</script>
</body>
</html>
`
