package figmadoc

// Wire types for an exported Figma-file JSON document (the REST file shape).
// Only the subset relevant to compliance analysis is decoded.

type fileDoc struct {
	Name       string                  `json:"name"`
	Document   jsonNode                `json:"document"`
	Components map[string]componentDef `json:"components"`
	Styles     map[string]styleDef     `json:"styles"`
}

type componentDef struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Remote bool   `json:"remote"`
}

type styleDef struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	StyleType string `json:"styleType"`
	Remote    bool   `json:"remote"`
}

// varAlias is a variable binding reference.
type varAlias struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type jsonColor struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

type jsonVector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type paintVars struct {
	Color *varAlias `json:"color"`
}

// jsonPaint decodes one fill or stroke. Visibility and opacity are omitted
// by the exporter when they hold their defaults.
type jsonPaint struct {
	Type           string     `json:"type"`
	Visible        *bool      `json:"visible"`
	Opacity        *float64   `json:"opacity"`
	Color          *jsonColor `json:"color"`
	BoundVariables *paintVars `json:"boundVariables"`
}

type effectVars struct {
	Color  *varAlias `json:"color"`
	Radius *varAlias `json:"radius"`
	Spread *varAlias `json:"spread"`
}

type jsonEffect struct {
	Type           string      `json:"type"`
	Visible        *bool       `json:"visible"`
	Radius         float64     `json:"radius"`
	Spread         float64     `json:"spread"`
	Offset         *jsonVector `json:"offset"`
	Color          *jsonColor  `json:"color"`
	BlendMode      string      `json:"blendMode"`
	BoundVariables *effectVars `json:"boundVariables"`
}

type jsonTypeStyle struct {
	FontFamily string  `json:"fontFamily"`
	FontWeight float64 `json:"fontWeight"`
	FontSize   float64 `json:"fontSize"`
}

// nodeVars carries node-level variable bindings.
type nodeVars struct {
	ItemSpacing   *varAlias `json:"itemSpacing"`
	PaddingTop    *varAlias `json:"paddingTop"`
	PaddingRight  *varAlias `json:"paddingRight"`
	PaddingBottom *varAlias `json:"paddingBottom"`
	PaddingLeft   *varAlias `json:"paddingLeft"`
	CornerRadius  *varAlias `json:"cornerRadius"`
}

type jsonNode struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Type           string            `json:"type"`
	Children       []jsonNode        `json:"children"`
	Fills          []jsonPaint       `json:"fills"`
	Strokes        []jsonPaint       `json:"strokes"`
	Effects        []jsonEffect      `json:"effects"`
	CornerRadius   float64           `json:"cornerRadius"`
	LayoutMode     string            `json:"layoutMode"`
	PaddingTop     float64           `json:"paddingTop"`
	PaddingRight   float64           `json:"paddingRight"`
	PaddingBottom  float64           `json:"paddingBottom"`
	PaddingLeft    float64           `json:"paddingLeft"`
	ItemSpacing    float64           `json:"itemSpacing"`
	Style          *jsonTypeStyle    `json:"style"`
	StyleRefs      map[string]string `json:"styles"`
	BoundVariables *nodeVars         `json:"boundVariables"`
	ComponentID    string            `json:"componentId"`
}
