package knowledge

import "github.com/prasadt1/photocoach/internal/core"

// Entries is the curated photography knowledge base: principles from
// published literature with verified attributions. Loaded once at startup,
// immutable afterwards. Embeddings are filled in by Load.
func Entries() []core.KnowledgeEntry {
	return []core.KnowledgeEntry{
		{
			Text: "Rule of thirds: divide the frame into a 3x3 grid and place the main subject " +
				"at the intersection points rather than centering it. The off-center placement " +
				"creates dynamic tension and visual interest in both portraits and landscapes.",
			Citation: "Adams, Ansel. The Camera. Little, Brown and Company, 1980.",
			Category: "composition",
			Topics:   []string{"rule of thirds", "composition", "framing", "grid", "power points"},
		},
		{
			Text: "Leading lines guide the viewer's eye through the photograph toward the main " +
				"subject. Roads, rivers, fences, and architectural elements all work; diagonal " +
				"and converging lines carry the most energy.",
			Citation: "Freeman, Michael. The Photographer's Eye. Ilex Press, 2007.",
			Category: "composition",
			Topics:   []string{"leading lines", "composition", "visual flow", "diagonal"},
		},
		{
			Text: "Negative space is the empty area around the subject. Leaving room to breathe " +
				"creates elegance and minimalism, particularly in portraits and product work.",
			Citation: "Freeman, Michael. The Photographer's Eye. Ilex Press, 2007.",
			Category: "composition",
			Topics:   []string{"negative space", "composition", "minimalism", "simplicity"},
		},
		{
			Text: "Frame within a frame: use doorways, windows, arches, or branches as natural " +
				"frames to add depth and draw attention to the subject.",
			Citation: "Freeman, Michael. The Photographer's Eye. Ilex Press, 2007.",
			Category: "composition",
			Topics:   []string{"framing", "composition", "depth", "layers"},
		},
		{
			Text: "The exposure triangle balances aperture, shutter speed, and ISO. Opening the " +
				"aperture one stop, halving the shutter time, or doubling ISO each admit one " +
				"stop more light; trade them against depth of field, motion blur, and noise.",
			Citation: "Peterson, Bryan. Understanding Exposure. Amphoto Books, 2010.",
			Category: "exposure",
			Topics:   []string{"exposure", "aperture", "shutter speed", "iso", "stops"},
		},
		{
			Text: "Aperture controls depth of field. Wide apertures such as f/1.8 isolate the " +
				"subject against a blurred background; narrow apertures such as f/11 keep a " +
				"landscape sharp front to back.",
			Citation: "Peterson, Bryan. Understanding Exposure. Amphoto Books, 2010.",
			Category: "exposure",
			Topics:   []string{"aperture", "depth of field", "bokeh", "f-stop"},
		},
		{
			Text: "Keep ISO as low as the light allows. Modern sensors stay clean to ISO 1600 " +
				"or beyond, but noise rises with sensitivity; raise ISO only after aperture and " +
				"shutter speed are exhausted.",
			Citation: "Kelby, Scott. The Digital Photography Book. Peachpit Press, 2006.",
			Category: "exposure",
			Topics:   []string{"iso", "noise", "grain", "low light", "sensitivity"},
		},
		{
			Text: "Golden hour, the hour after sunrise and before sunset, gives warm directional " +
				"light with soft shadows. Midday sun is harsh and flat by comparison; schedule " +
				"outdoor shoots around the light.",
			Citation: "Kelby, Scott. The Digital Photography Book. Peachpit Press, 2006.",
			Category: "lighting",
			Topics:   []string{"golden hour", "lighting", "sunrise", "sunset", "warm light"},
		},
		{
			Text: "Quality of light matters more than quantity. Hard light from direct sun or " +
				"bare flash gives sharp shadows and high contrast; soft light from an overcast " +
				"sky or a diffuser flatters portraits.",
			Citation: "Hobby, David. Strobist Lighting 101. strobist.com, 2006.",
			Category: "lighting",
			Topics:   []string{"lighting", "hard light", "soft light", "shadows", "contrast"},
		},
		{
			Text: "Focus on the eyes in portraits. If the eyes are not sharp the photo fails " +
				"even when everything else works; use single-point autofocus on the nearest eye.",
			Citation: "Kelby, Scott. The Digital Photography Book. Peachpit Press, 2006.",
			Category: "focus",
			Topics:   []string{"focus", "sharpness", "portrait", "eyes", "autofocus"},
		},
		{
			Text: "Most lenses are sharpest two to three stops down from wide open; an f/1.8 " +
				"lens peaks near f/4 to f/5.6. Avoid f/22 and beyond where diffraction softens " +
				"the image.",
			Citation: "Ang, Tom. Digital Photography: An Introduction. DK Publishing, 2008.",
			Category: "technical",
			Topics:   []string{"sharpness", "aperture", "lens", "sweet spot", "diffraction"},
		},
		{
			Text: "White balance corrects color casts. Auto white balance handles most scenes " +
				"but fails under mixed lighting; pick the daylight, cloudy, or tungsten preset " +
				"to match the dominant source.",
			Citation: "Ang, Tom. Digital Photography: An Introduction. DK Publishing, 2008.",
			Category: "color",
			Topics:   []string{"white balance", "color temperature", "color cast", "kelvin"},
		},
		{
			Text: "Always level the horizon, especially in landscapes and seascapes. Even a one " +
				"or two degree tilt distracts; use the camera's built-in level or grid overlay.",
			Citation: "Kelby, Scott. The Digital Photography Book. Peachpit Press, 2006.",
			Category: "common_mistakes",
			Topics:   []string{"horizon", "tilt", "level", "landscape", "grid"},
		},
		{
			Text: "Beginners tend to center everything. Symmetry suits architecture and " +
				"reflections, but most photos gain from off-center composition; move the " +
				"subject to a third and let the scene breathe.",
			Citation: "Freeman, Michael. The Photographer's Eye. Ilex Press, 2007.",
			Category: "common_mistakes",
			Topics:   []string{"centered subject", "composition", "symmetry", "rule of thirds"},
		},
		{
			Text: "Scan the whole frame for background distractions before shooting: clutter, " +
				"bright spots, or poles growing out of the subject's head all compete for " +
				"attention. Change angle or open the aperture to clean the background.",
			Citation: "Freeman, Michael. The Photographer's Eye. Ilex Press, 2007.",
			Category: "common_mistakes",
			Topics:   []string{"background", "distraction", "clutter", "clean background"},
		},
	}
}
