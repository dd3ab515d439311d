package server

// indexHTML is the viewer page. It subscribes to /api/render with an
// EventSource and swaps the preview image on every progress event.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>rtracer</title>
<style>
body { font-family: sans-serif; margin: 2em; background: #1b1b1b; color: #ddd; }
label { margin-right: 1em; }
input, select { width: 7em; }
button { padding: 0.2em 1em; }
#frame { margin-top: 1em; display: block; border: 1px solid #444; }
#status { margin-top: 0.5em; color: #9c9; }
</style>
</head>
<body>
<h1>rtracer</h1>
<div>
  <label>scene <select id="scene"></select></label>
  <label>width <input id="width" type="number" value="400"></label>
  <label>height <input id="height" type="number" placeholder="auto"></label>
  <label>samples <input id="maxSamples" type="number" placeholder="scene"></label>
  <label>passes <input id="maxPasses" type="number" value="7"></label>
  <label>seed <input id="seed" type="number" value="1"></label>
  <button onclick="startRender()">render</button>
</div>
<img id="frame" alt="">
<div id="status">idle</div>
<script>
var source = null;

function loadScenes() {
  fetch('/api/scenes').then(function (res) { return res.json(); }).then(function (scenes) {
    var sel = document.getElementById('scene');
    scenes.forEach(function (s) {
      var opt = document.createElement('option');
      opt.value = s.name;
      opt.textContent = s.name;
      sel.appendChild(opt);
    });
  });
}

function startRender() {
  if (source) { source.close(); }
  var params = new URLSearchParams();
  ['scene', 'width', 'height', 'maxSamples', 'maxPasses', 'seed'].forEach(function (id) {
    var value = document.getElementById(id).value;
    if (value) { params.set(id, value); }
  });
  document.getElementById('status').textContent = 'rendering...';
  source = new EventSource('/api/render?' + params.toString());
  source.addEventListener('progress', function (e) {
    var update = JSON.parse(e.data);
    document.getElementById('frame').src = 'data:image/png;base64,' + update.imageData;
    document.getElementById('status').textContent =
      'pass ' + update.passNumber + '/' + update.totalPasses +
      ', ' + update.stats.averageSamples.toFixed(1) + ' samples/pixel' +
      ', ' + update.elapsedMs + ' ms';
    if (update.isComplete) { source.close(); }
  });
  source.addEventListener('error', function (e) {
    if (e.data) { document.getElementById('status').textContent = e.data; }
    if (source) { source.close(); }
  });
  source.addEventListener('complete', function () { source.close(); });
}

loadScenes();
</script>
</body>
</html>
`
