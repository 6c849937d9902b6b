package tag

// Document structure
const (
	HTML   = "html"
	Head   = "head"
	Link   = "link"
	Meta   = "meta"
	Style  = "style"
	Title  = "title"
	Body   = "body"
	Header = "header"
	Main   = "main"
	Footer = "footer"
)

// Sectioning
const (
	Article = "article"
	Aside   = "aside"
	Nav     = "nav"
	Section = "section"
	Div     = "div"
	Ul      = "ul"
	Ol      = "ol"
	Li      = "li"
	Span    = "span"
	Br      = "br"
	Hr      = "hr"
)

// Text
const (
	H1 = "h1"
	H2 = "h2"
	H3 = "h3"
	H4 = "h4"
	H5 = "h5"
	H6 = "h6"
	P  = "p"
	A  = "a"
)

// Media
const (
	Img    = "img"
	Audio  = "audio"
	Video  = "video"
	Track  = "track"
	Source = "source"
	Svg    = "svg"
	Canvas = "canvas"
	Script = "script"
)

// Forms and interactive
const (
	Button   = "button"
	Input    = "input"
	Datalist = "datalist"
	Select   = "select"
	Option   = "option"
	Form     = "form"
	Label    = "label"
	Textarea = "textarea"
	Details  = "details"
	Dialog   = "dialog"
	Summary  = "summary"
	Template = "template"
)
