package poster

// Square poster, top content plus bottom footer strip.
const (
	Width        = 1080
	Height       = 1080
	FooterHeight = 210 // reserved for photo, name, role, phone
)

// DownloadFileName is the fixed name offered for the rendered PNG.
const DownloadFileName = "insurance_poster_tamil_square.png"
