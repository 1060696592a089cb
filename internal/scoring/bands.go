package scoring

import "mmgp/internal/model"

// MaturityLevel is the textual classification of a maturity index.
type MaturityLevel string

const (
	Inicial     MaturityLevel = "Inicial"
	Conhecido   MaturityLevel = "Conhecido"
	Padronizado MaturityLevel = "Padronizado"
	Gerenciado  MaturityLevel = "Gerenciado"
	Otimizado   MaturityLevel = "Otimizado"
)

// Classify maps an index onto half-open bands: <2, <3, <4, <5, >=5.
func Classify(index float64) MaturityLevel {
	switch {
	case index < 2:
		return Inicial
	case index < 3:
		return Conhecido
	case index < 4:
		return Padronizado
	case index < 5:
		return Gerenciado
	}
	return Otimizado
}

var interpretations = map[MaturityLevel]string{
	Inicial:     "Nível Inicial (1-1.9): A organização está nos estágios iniciais de gerenciamento de projetos, com iniciativas isoladas e sem padronização. Recomenda-se investir em treinamentos básicos e conscientização sobre a importância do gerenciamento de projetos.",
	Conhecido:   "Nível Conhecido (2-2.9): A organização reconhece a importância do gerenciamento de projetos, mas ainda não possui uma metodologia consolidada. Recomenda-se formalizar processos e investir em capacitação mais avançada.",
	Padronizado: "Nível Padronizado (3-3.9): A organização possui metodologia estabelecida, mas ainda há oportunidades de melhoria na implementação e no controle. Recomenda-se fortalecer o PMO e implementar métricas de desempenho.",
	Gerenciado:  "Nível Gerenciado (4-4.9): A organização possui processos consolidados e alinhados à estratégia. Recomenda-se focar em otimização e melhoria contínua dos processos existentes.",
	Otimizado:   "Nível Otimizado (5): A organização atingiu excelência em gerenciamento de projetos, com processos otimizados e cultura estabelecida. Recomenda-se manter o benchmark e a inovação contínua.",
}

// Interpretation returns the recommendation paragraph for an index.
func Interpretation(index float64) string {
	return interpretations[Classify(index)]
}

// Tier is the qualitative band of a single level score.
type Tier string

const (
	Fraco   Tier = "Fraco"
	Regular Tier = "Regular"
	Bom     Tier = "Bom"
)

// TierFor bands a level score: <33 weak, <66 regular, otherwise good.
func TierFor(score float64) Tier {
	switch {
	case score < 33:
		return Fraco
	case score < 66:
		return Regular
	}
	return Bom
}

func (t Tier) index() int {
	switch t {
	case Fraco:
		return 0
	case Regular:
		return 1
	}
	return 2
}

var descriptions = map[model.Level][3]string{
	model.Level2: {
		"Nível muito fraco. Quase nenhuma iniciativa da organização.",
		"Iniciativas isoladas. Conhecimento introdutório de gerenciamento de projetos.",
		"Algum avanço. Treinamentos básicos de gerenciamento para os principais envolvidos.",
	},
	model.Level3: {
		"Nível muito fraco. Não existe metodologia.",
		"Metodologia desenvolvida, mas pouco utilizada.",
		"Metodologia estabelecida e em uso, com informatização parcial.",
	},
	model.Level4: {
		"Nível muito fraco. Não existe acompanhamento formal.",
		"Acompanhamento e controle parcial, em algumas áreas.",
		"Acompanhamento e controle em todas as áreas, com métricas e melhorias.",
	},
	model.Level5: {
		"Nível muito fraco. Não existem iniciativas de otimização.",
		"Algumas iniciativas isoladas de melhoria contínua.",
		"Otimização plena, com uso de benchmarking e melhoria contínua.",
	},
}

// Description returns the fixed text for level l at the given score, or ""
// for an unknown level.
func Description(l model.Level, score float64) string {
	d, ok := descriptions[l]
	if !ok {
		return ""
	}
	return d[TierFor(score).index()]
}
