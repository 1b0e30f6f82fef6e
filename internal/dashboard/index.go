package dashboard

// indexHTML is the live-view page. The two %d verbs are the canvas width
// and height.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>brot</title>
<style>
  body { background: #111; color: #ddd; font-family: monospace; text-align: center; }
  canvas { border: 1px solid #444; image-rendering: pixelated; }
</style>
</head>
<body>
<h3>brot live view</h3>
<canvas id="view" width="%d" height="%d"></canvas>
<p id="status">connecting...</p>
<script>
  const canvas = document.getElementById("view");
  const ctx = canvas.getContext("2d");
  const status = document.getElementById("status");

  const ws = new WebSocket("ws://" + location.host + "/ws");
  let rows = 0;

  ws.onopen = () => { status.textContent = "rendering..."; };
  ws.onclose = () => { status.textContent = "done: " + rows + " rows"; };
  ws.onmessage = (ev) => {
    const band = JSON.parse(ev.data);
    const bytes = Uint8Array.from(atob(band.shades), (c) => c.charCodeAt(0));
    const img = ctx.createImageData(band.width, band.rows);
    for (let i = 0; i < bytes.length; i++) {
      img.data[4*i] = img.data[4*i+1] = img.data[4*i+2] = bytes[i];
      img.data[4*i+3] = 255;
    }
    ctx.putImageData(img, 0, band.top);
    rows += band.rows;
    status.textContent = "rendered " + rows + " rows";
  };
</script>
</body>
</html>
`
