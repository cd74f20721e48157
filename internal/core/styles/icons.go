package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconCheckList = " "
	IconCheck     = "✓"
	IconCross     = "✗"
	IconStar      = "★"
	IconPaperclip = "\U000F03E2" // 󰏢
)

// File type icons
var (
	IconFolderOpen  = "" //
	IconFileDefault = " " //
	IconFileImage   = " " //
	IconFilePDF     = " " //
	IconFileText    = " " //
)

// FileIcon returns an icon for a media type.
func FileIcon(mediaType string) string {
	switch {
	case len(mediaType) >= 6 && mediaType[:6] == "image/":
		return IconFileImage
	case mediaType == "application/pdf":
		return IconFilePDF
	case len(mediaType) >= 5 && mediaType[:5] == "text/":
		return IconFileText
	default:
		return IconFileDefault
	}
}
