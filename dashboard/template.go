package dashboard

// pageTemplate is the single dashboard page. The client script fetches
// /api/view on every slider change and re-renders the charts and table from
// the returned view model.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 0; color: #2c3e50; }
h1 { text-align: center; padding: 20px; }
.updated { text-align: center; color: #7f8c8d; }
.controls, .table-wrap { margin: 20px; }
.slider-row { display: flex; gap: 10px; align-items: center; }
.slider-row input[type=range] { flex: 1; }
.ticks { display: flex; justify-content: space-between; color: #7f8c8d; font-size: 0.8em; }
.charts { display: flex; flex-wrap: wrap; margin: 20px; gap: 20px; }
.panel { flex: 1; min-width: 380px; }
.chart { display: flex; align-items: flex-end; gap: 2px; height: 260px; border-bottom: 1px solid #ccc; }
.chart .bar { flex: 1; min-width: 4px; background: #365c8d; }
#price-table { border-collapse: collapse; width: 100%; }
#price-table th { background: #2c3e50; color: white; font-weight: bold; cursor: pointer; }
#price-table th, #price-table td { text-align: left; padding: 10px; min-width: 100px; border: 1px solid #ddd; }
.no-data { text-align: center; color: #7f8c8d; padding: 40px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<h3 class="updated">Last Updated: {{.UpdatedAt}}</h3>
{{if .HasData}}
<div class="controls">
  <label>Filter by Price Range: <span id="range-label"></span></label>
  <div class="slider-row">
    <input type="range" id="low" min="{{.Min}}" max="{{.Max}}" step="{{.Step}}" value="{{.Min}}">
    <input type="range" id="high" min="{{.Min}}" max="{{.Max}}" step="{{.Step}}" value="{{.Max}}">
  </div>
  <div class="ticks">{{range .Ticks}}<span>{{.Label}}</span>{{end}}</div>
</div>
<div class="charts">
  <div class="panel"><h3>Vegetable Prices</h3><div id="bar-chart" class="chart"></div></div>
  <div class="panel"><h3>Price Distribution</h3><div id="hist-chart" class="chart"></div></div>
</div>
<div class="table-wrap">
  <h3>Detailed Price List</h3>
  <input type="text" id="table-filter" placeholder="Filter vegetables...">
  <table id="price-table">
    <thead><tr>
      <th data-key="name">Vegetable</th>
      <th data-key="raw_range">Price Range</th>
      <th data-key="min_price">Min Price (&#8377;)</th>
    </tr></thead>
    <tbody></tbody>
  </table>
</div>
<script>
var lowInput = document.getElementById('low');
var highInput = document.getElementById('high');
var tableFilter = document.getElementById('table-filter');
var rows = [];
var sortKey = null;
var sortAsc = true;

function refresh() {
  var low = parseFloat(lowInput.value);
  var high = parseFloat(highInput.value);
  if (low > high) { var t = low; low = high; high = t; }
  document.getElementById('range-label').textContent = '₹' + low + ' to ₹' + high;
  fetch('/api/view?low=' + low + '&high=' + high)
    .then(function (r) { return r.json(); })
    .then(function (vm) {
      rows = vm.records || [];
      renderBar(vm.bar);
      renderHist(vm.histogram);
      renderTable();
    });
}

function renderBar(bar) {
  var el = document.getElementById('bar-chart');
  el.innerHTML = '';
  var points = (bar && bar.points) || [];
  var max = 0;
  points.forEach(function (p) { if (p.value > max) max = p.value; });
  points.forEach(function (p) {
    var div = document.createElement('div');
    div.className = 'bar';
    div.style.height = (max > 0 ? (p.value / max) * 100 : 0) + '%';
    div.style.background = p.color;
    div.title = p.label + ': ₹' + p.value;
    el.appendChild(div);
  });
}

function renderHist(hist) {
  var el = document.getElementById('hist-chart');
  el.innerHTML = '';
  var bins = (hist && hist.bins) || [];
  var max = 0;
  bins.forEach(function (b) { if (b.count > max) max = b.count; });
  bins.forEach(function (b) {
    var div = document.createElement('div');
    div.className = 'bar';
    div.style.height = (max > 0 ? (b.count / max) * 100 : 0) + '%';
    div.title = '₹' + b.low.toFixed(0) + ' to ₹' + b.high.toFixed(0) + ': ' + b.count;
    el.appendChild(div);
  });
}

function renderTable() {
  var tbody = document.querySelector('#price-table tbody');
  tbody.innerHTML = '';
  var needle = tableFilter.value.toLowerCase();
  var shown = rows.filter(function (r) {
    return needle === '' || r.name.toLowerCase().indexOf(needle) !== -1;
  });
  if (sortKey !== null) {
    shown = shown.slice().sort(function (a, b) {
      var x = a[sortKey], y = b[sortKey];
      if (x < y) return sortAsc ? -1 : 1;
      if (x > y) return sortAsc ? 1 : -1;
      return 0;
    });
  }
  shown.forEach(function (r) {
    var tr = document.createElement('tr');
    [r.name, r.raw_range, r.min_price].forEach(function (v) {
      var td = document.createElement('td');
      td.textContent = v;
      tr.appendChild(td);
    });
    tbody.appendChild(tr);
  });
}

document.querySelectorAll('#price-table th').forEach(function (th) {
  th.addEventListener('click', function () {
    var key = th.getAttribute('data-key');
    if (sortKey === key) { sortAsc = !sortAsc; } else { sortKey = key; sortAsc = true; }
    renderTable();
  });
});

lowInput.addEventListener('input', refresh);
highInput.addEventListener('input', refresh);
tableFilter.addEventListener('input', renderTable);
refresh();
</script>
{{else}}
<p class="no-data">No price data available. The source page could not be scraped at startup.</p>
{{end}}
</body>
</html>
`
