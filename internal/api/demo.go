// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package api

import "github.com/tomtom215/movierec/internal/recommend"

// demoQuery is the title the fixed demo search section was computed for.
const demoQuery = "Hulk"

// demoPrediction is a precomputed prediction served by /demo without
// touching the engine, so clients can be developed against a stable shape.
func demoPrediction() *recommend.Prediction {
	return &recommend.Prediction{
		Search: []recommend.Presented{
			{Title: "Hulk", Score: 1.0000000000000004},
			{Title: "Final Voyage", Score: 0.3951409204446796},
			{Title: "Shiner", Score: 0.3934953842635981},
			{Title: "Parallels", Score: 0.37363569569667926},
			{Title: "The Invisible Man Returns", Score: 0.3718234671885087},
			{Title: "Zero", Score: 0.35993894569704776},
			{Title: "Behemoth, the Sea Monster", Score: 0.34946920014223065},
			{Title: "Captive Wild Woman", Score: 0.34224960799957377},
			{Title: "Men Without Women", Score: 0.3351876957726903},
			{Title: "Universal Soldier II: Brothers in Arms", Score: 0.3161697098854824},
		},
		PeopleLiked: []recommend.Presented{
			{Title: "The Thomas Crown Affair", Score: 2.2550468624050857},
			{Title: "A River Runs Through It", Score: 2.102978829666399},
			{Title: "The 39 Steps", Score: 2.01025369403849},
			{Title: "The Million Dollar Hotel", Score: 1.987185811927711},
			{Title: "Lili Marleen", Score: 1.8645374972853241},
			{Title: "The Sixth Sense", Score: 1.7956508724530549},
			{Title: "Les Vacances de Monsieur Hulot", Score: 1.7806328275169867},
			{Title: "Terminator 3: Rise of the Machines", Score: 1.7777777777777777},
			{Title: "Bad Boys II", Score: 1.7777777777777777},
			{Title: "Солярис", Score: 1.775044251515773},
		},
		YouMayLike: []recommend.Presented{
			{Title: "Beetlejuice", Score: 1.433565818081499},
			{Title: "Cousin, Cousine", Score: 1.23566401103802},
			{Title: "Lili Marleen", Score: 1.1818824319472296},
			{Title: "Bad Boys II", Score: 1.12992125984252},
			{Title: "Der rote Elvis", Score: 1.103525149677567},
			{Title: "The 39 Steps", Score: 1.0193782842317336},
			{Title: "Confession of a Child of the Century", Score: 1.013486996417949},
			{Title: "Mere Brother Ki Dulhan", Score: 0.977803732781572},
			{Title: "K-19: The Widowmaker", Score: 0.9771470989578447},
			{Title: "The Great American Girl Robbery", Score: 0.8072862274827155},
		},
	}
}
