package director

import "github.com/storyflow/director/scene"

// FallbackScenes returns the deterministic production sheet used whenever
// no backend is reachable. It satisfies every schema invariant of
// normalized output so statistics and export can run without a network.
func FallbackScenes() []scene.Scene {
	return []scene.Scene{
		{
			"scene_number":     1,
			"narrative_beat":   "A boy watches the stars from his rooftop (Mock Output)",
			"visual_prompt":    "[SETTING ANCHOR: Moonlit rooftop in a quiet village, midnight]. [SUBJECT: Raju, a 10-year-old boy wearing a faded blue cotton shirt and dark shorts]. [ACTION: He sits cross-legged, shoulders dropped, breathing slowly, misty puffs visible in the cool night air]. [GAZE: Eyes wide and glassy with starlight, fixed on the Milky Way, scanning the sky left to right]. [CAMERA: Low-angle 35mm wide shot, 4K, deep focus, slow dolly push-in toward his face]. [LIGHTING: Moonlit blue tint at 4500K, high dynamic range].",
			"camera_movement":  "Slow dolly push-in on a 35mm wide-angle lens at f/11, establishing the village rooftops behind.",
			"mood_lighting":    "Moonlight from upper-right at 4500K with ambient starlight fill, reflections in the boy's pupils.",
			"duration_seconds": 6.0,
			"transition_type":  "fade",
			"motion_intensity": "low",
			"key_elements":     []interface{}{"rooftop texture", "starry night", "breathing mist"},
			"audio_suggestion": "Crickets and distant wind chimes under a quiet night ambience",
			"character_details": "Raju is in meditative awe. His eyes track individual stars and his shoulders rise and fall gently with each breath.",
			"continuity_notes": "ESTABLISHES ENVIRONMENT. Raju is stationary; sets up the gaze for the light's arrival in scene 2.",
		},
		{
			"scene_number":     2,
			"narrative_beat":   "A mysterious light descends from the sky (Mock Output)",
			"visual_prompt":    "[SETTING ANCHOR: Same moonlit village rooftop, same houses in the background]. [SUBJECT: Raju, the same boy in the blue shirt, still cross-legged]. [ACTION: His body jolts, spine straightens, hands grip his knees as a golden-white orb drops from the upper-left sky]. [GAZE: Eyes locked on the descending orb, tracking it down]. [CAMERA: Medium shot, 50mm lens, rack focus from the stars to Raju's widening eyes]. [LIGHTING: Volumetric rays at 6000K from the orb reflecting off rooftop tiles].",
			"camera_movement":  "Whip pan following the light's descent, then a quick rack focus to Raju's face. 50mm lens at f/2.8.",
			"mood_lighting":    "Two-tone: established 4500K moonlight mixed with a dynamic golden-white 6000K burst from the orb.",
			"duration_seconds": 5.0,
			"transition_type":  "eyeline_match",
			"motion_intensity": "high",
			"key_elements":     []interface{}{"golden orb", "rooftop shadows", "startled expression"},
			"audio_suggestion": "A rising shimmer over the night ambience, sudden intake of breath",
			"character_details": "Raju's reaction is visceral: facial muscles tighten and his pupils contract as the light approaches.",
			"continuity_notes": "CAUSAL CHAIN: startled by the light from scene 1; maintains rooftop position; prepares the reveal.",
		},
		{
			"scene_number":     3,
			"narrative_beat":   "The light becomes a tiny glowing figure (Mock Output)",
			"visual_prompt":    "[SETTING ANCHOR: Same rooftop, the orb now hovering a meter from Raju]. [SUBJECT: Raju and a 15cm fairy with translucent pulsing wings]. [ACTION: The orb coalesces into the fairy; Raju slowly extends a trembling hand while the fairy reaches back fluidly]. [GAZE: Raju looks directly into the fairy's eyes; she tilts her head with a compassionate gaze]. [CAMERA: Close-up, shallow f/1.8 depth of field, tracking arc rotating 90 degrees]. [LIGHTING: Iridescent 4800K glow, subpixel wing flutter, sharp focus on the reaching hands].",
			"camera_movement":  "Slow three-second arc around the midpoint between their heads, anamorphic lens flare.",
			"mood_lighting":    "Subsurface scattering on the fairy's skin; a warm 4800K glow from her wings casting highlights onto Raju's shirt.",
			"duration_seconds": 7.0,
			"transition_type":  "motion_match",
			"motion_intensity": "medium",
			"key_elements":     []interface{}{"wing translucency", "trembling hand", "iridescent particles"},
			"audio_suggestion": "Soft bell-like harmonics as the wings pulse",
			"character_details": "Raju's fear turns to curiosity; his hand moves slowly and his eyes are wet with wonder.",
			"continuity_notes": "CAUSAL CHAIN: the orb from scene 2 transforms; the reach leads directly to the touch.",
		},
		{
			"scene_number":     4,
			"narrative_beat":   "Their hands touch and magic bursts outward (Mock Output)",
			"visual_prompt":    "[SETTING ANCHOR: Extreme close-up on the center-frame point of contact]. [SUBJECT: Raju's finger and the fairy's glowing fingertip]. [ACTION: The exact moment of contact; a shockwave ripples across Raju's skin and the fairy's wings snap to full span]. [GAZE: Raju squints against the burst; the fairy's eyes glow brighter]. [CAMERA: Macro extreme close-up, focus snap at impact]. [LIGHTING: Omnidirectional 6500K white-out burst, 120fps slow motion, HDR bloom].",
			"camera_movement":  "Macro steady shot with a micro-vibration shake at the moment of contact. 100mm macro lens.",
			"mood_lighting":    "Golden-white 6500K blast filling the frame, receding to reveal glowing fingertips.",
			"duration_seconds": 4.0,
			"transition_type":  "match_cut",
			"motion_intensity": "high",
			"key_elements":     []interface{}{"finger contact", "shockwave", "light bloom"},
			"audio_suggestion": "A deep subsonic pulse swallowed by sudden silence",
			"character_details": "Raju feels the energy pulse; his hair lifts slightly and his iris contracts fully.",
			"continuity_notes": "CLIMAX. The burst justifies the transport to the sky in scene 5.",
		},
		{
			"scene_number":     5,
			"narrative_beat":   "Boy and fairy soar above the clouds (Mock Output)",
			"visual_prompt":    "[SETTING ANCHOR: Aerial night sky, 500m above the rooftops established in scene 1]. [SUBJECT: Raju and the fairy soaring hand in hand]. [ACTION: They glide horizontally; Raju's legs kick as if swimming in air, his shirt rippling in the wind]. [GAZE: He looks down at the tiny village, then up at the moon and the curving horizon]. [CAMERA: Ultra-wide 24mm aerial tracking shot, clouds layered in the foreground, village far below]. [LIGHTING: 4500K moonlight on the clouds, the same starlight pattern from scene 1].",
			"camera_movement":  "Sweeping wide aerial track on a 24mm lens at f/8, keeping the village geography below.",
			"mood_lighting":    "Moonlight from above, the fairy's 4800K glow lighting Raju's profile, dim 3000K sparks from the village.",
			"duration_seconds": 8.0,
			"transition_type":  "dissolve",
			"motion_intensity": "medium",
			"key_elements":     []interface{}{"floating clouds", "village miniatures", "wind-swept hair"},
			"audio_suggestion": "Swelling strings with wind rushing past",
			"character_details": "Raju is elated; his laughter is silent but visible as he takes in the scale of the world.",
			"continuity_notes": "RESOLUTION. Final step of the causal chain; keeps the nighttime logic and character look from the start.",
		},
	}
}
