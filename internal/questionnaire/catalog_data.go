package questionnaire

import "mmgp/internal/model"

var sections = []Section{
	{
		Level:  model.Level2,
		Number: 2,
		Name:   "Conhecido",
		Title:  "Nível 2 – Conhecido (Iniciativas Isoladas)",
		Questions: []Question{
			{ID: "q1", Number: 1, Text: "Nos últimos 12 meses, os profissionais do setor participaram de treinamentos internos ou externos relacionados a aspectos básicos de gerenciamento de projetos?", DetailFields: []string{
				"Quais foram os temas abordados nos treinamentos?",
				"Quantos profissionais participaram?",
				"Com que frequência os treinamentos ocorreram?",
			}},
			{ID: "q2", Number: 2, Text: "O setor utilizou softwares para gerenciamento de tempo (como sequenciamento de tarefas, cronogramas, gráficos de Gantt) nos últimos 12 meses?", DetailFields: []string{
				"Quais softwares foram utilizados?",
				"Quantos profissionais foram treinados para utilizá-los?",
				"Em quantos projetos esses softwares foram aplicados?",
			}},
			{ID: "q3", Number: 3, Text: "Os profissionais do setor têm experiência recente no planejamento, acompanhamento e encerramento de projetos, utilizando padrões reconhecidos (como PMBOK) e ferramentas computacionais?", DetailFields: []string{
				"Quantos projetos foram gerenciados com base nesses padrões?",
				"Quais ferramentas computacionais foram utilizadas?",
				"Quais foram os principais resultados obtidos?",
			}},
			{ID: "q4", Number: 4, Text: "A alta administração do setor reconhece a importância do gerenciamento de projetos e tem promovido iniciativas para seu desenvolvimento nos últimos 12 meses?", DetailFields: []string{
				"Quais iniciativas foram promovidas?",
				"Quantos membros da alta administração participaram?",
				"Quais foram os principais resultados dessas iniciativas?",
			}},
			{ID: "q5", Number: 5, Text: "A alta administração do setor reconhece a importância de possuir uma metodologia de gerenciamento de projetos e tem promovido iniciativas para seu desenvolvimento nos últimos 12 meses?", DetailFields: []string{
				"Quais iniciativas foram promovidas?",
				"Quantos membros da alta administração participaram?",
				"Quais foram os principais resultados dessas iniciativas?",
			}},
			{ID: "q6", Number: 6, Text: "A alta administração do setor reconhece a importância de possuir um sistema informatizado para o gerenciamento de projetos e tem promovido iniciativas para seu desenvolvimento nos últimos 12 meses?", DetailFields: []string{
				"Quais iniciativas foram promovidas?",
				"Quantos membros da alta administração participaram?",
				"Quais foram os principais resultados dessas iniciativas?",
			}},
			{ID: "q7", Number: 7, Text: "A alta administração do setor reconhece a importância dos componentes da estrutura organizacional (como Gerentes de Projeto, PMO, Comitês, Sponsor) e tem promovido iniciativas para seu desenvolvimento nos últimos 12 meses?", DetailFields: []string{
				"Quais iniciativas foram promovidas?",
				"Quantos membros da alta administração participaram?",
				"Quais foram os principais resultados dessas iniciativas?",
			}},
			{ID: "q8", Number: 8, Text: "A alta administração do setor reconhece a importância de alinhar os projetos com as estratégias e prioridades da organização e tem promovido iniciativas para esse alinhamento nos últimos 12 meses?", DetailFields: []string{
				"Quais iniciativas foram promovidas?",
				"Quantos membros da alta administração participaram?",
				"Quais foram os principais resultados dessas iniciativas?",
			}},
			{ID: "q9", Number: 9, Text: "A alta administração do setor reconhece a importância de desenvolver competências comportamentais (como liderança, negociação, comunicação, resolução de conflitos) e tem promovido iniciativas para esse desenvolvimento nos últimos 12 meses?", DetailFields: []string{
				"Quais iniciativas foram promovidas?",
				"Quantos membros da alta administração participaram?",
				"Quais foram os principais resultados dessas iniciativas?",
			}},
			{ID: "q10", Number: 10, Text: "A alta administração do setor reconhece a importância de desenvolver competências técnicas e contextuais (relacionadas ao produto, negócios, estratégia da organização, clientes) e tem promovido iniciativas para esse desenvolvimento nos últimos 12 meses?", DetailFields: []string{
				"Quais iniciativas foram promovidas?",
				"Quantos membros da alta administração participaram?",
				"Quais foram os principais resultados dessas iniciativas?",
			}},
		},
	},
	{
		Level:  model.Level3,
		Number: 3,
		Name:   "Padronizado",
		Title:  "Nível 3 – Padronizado",
		Questions: []Question{
			{ID: "q11", Number: 11, Text: "A organização possui metodologia de gerenciamento de projetos formalizada e divulgada?", DetailFields: []string{
				"A metodologia é baseada em algum referencial (ex: PMBOK, PRINCE2)?",
				"Desde quando está formalizada?",
				"Como e com que frequência é divulgada?",
			}},
			{ID: "q12", Number: 12, Text: "A metodologia de gerenciamento de projetos é aplicada em grande parte dos projetos do setor?", DetailFields: []string{
				"Qual o percentual de projetos que seguem a metodologia?",
				"Há auditorias ou verificações para garantir a aplicação?",
			}},
			{ID: "q13", Number: 13, Text: "A metodologia de gerenciamento de projetos contempla processos de iniciação, planejamento, execução, controle e encerramento?", DetailFields: []string{
				"Quais desses processos são mais consolidados?",
				"Há documentos ou templates padronizados para cada fase?",
			}},
			{ID: "q14", Number: 14, Text: "A organização possui um sistema informatizado de gerenciamento de projetos que apoia a aplicação da metodologia?", DetailFields: []string{
				"Qual sistema é utilizado?",
				"Quais funcionalidades estão em uso (ex: cronograma, riscos, custos)?",
				"Há integração com outros sistemas corporativos?",
			}},
			{ID: "q15", Number: 15, Text: "Existe um Escritório de Projetos (PMO) com papel definido para apoiar a gestão dos projetos?", DetailFields: []string{
				"Quais são as principais atribuições do PMO?",
				"Qual a estrutura (equipe, hierarquia)?",
				"O PMO atua de forma consultiva, diretiva ou controladora?",
			}},
			{ID: "q16", Number: 16, Text: "O setor realiza reuniões de lições aprendidas no encerramento dos projetos?", DetailFields: []string{
				"Qual a frequência das reuniões?",
				"Como as lições aprendidas são registradas e disseminadas?",
				"Elas são reutilizadas em projetos futuros?",
			}},
			{ID: "q17", Number: 17, Text: "Existem indicadores de desempenho utilizados para avaliação de projetos (ex: prazo, custo, escopo, qualidade)?", DetailFields: []string{
				"Quais indicadores são utilizados?",
				"Como são medidos e com que periodicidade?",
				"Quem analisa os resultados?",
			}},
			{ID: "q18", Number: 18, Text: "Existe padronização de documentos, relatórios e templates para os projetos?", DetailFields: []string{
				"Quais documentos estão padronizados?",
				"Onde estão armazenados e como são acessados?",
				"Quem é responsável pela atualização?",
			}},
			{ID: "q19", Number: 19, Text: "Os papéis e responsabilidades das partes interessadas nos projetos estão claramente definidos?", DetailFields: []string{
				"Há matriz de responsabilidades (ex: RACI)?",
				"Os papéis são comunicados aos envolvidos?",
				"Existem conflitos de atribuições?",
			}},
			{ID: "q20", Number: 20, Text: "Os projetos são formalmente autorizados antes de iniciar?", DetailFields: []string{
				"Quem é responsável pela autorização?",
				"Que tipo de documento é utilizado (termo de abertura, e-mail, etc.)?",
				"Esse processo é obrigatório para todos os projetos?",
			}},
		},
	},
	{
		Level:  model.Level4,
		Number: 4,
		Name:   "Gerenciado",
		Title:  "Nível 4 – Gerenciado",
		Questions: []Question{
			{ID: "q21", Number: 21, Text: "Existe um processo formal para priorização e seleção de projetos alinhados às estratégias da organização?", DetailFields: []string{
				"Qual critério é utilizado na priorização (ROI, impacto estratégico, etc.)?",
				"Quem participa da definição?",
				"Há revisão periódica dessas prioridades?",
			}},
			{ID: "q22", Number: 22, Text: "Os projetos são agrupados e tratados como portfólios ou programas?", DetailFields: []string{
				"Quais critérios definem o agrupamento (tipo, área, objetivo)?",
				"Como é feita a gestão integrada?",
				"Há gestores de portfólio ou programa?",
			}},
			{ID: "q23", Number: 23, Text: "Existe controle centralizado e padronizado dos indicadores de desempenho dos projetos?", DetailFields: []string{
				"Quais são os indicadores padronizados?",
				"Onde são registrados (dashboard, sistema)?",
				"Com que frequência são analisados?",
			}},
			{ID: "q24", Number: 24, Text: "A organização realiza auditorias ou avaliações periódicas nos projetos para verificar aderência à metodologia?", DetailFields: []string{
				"Qual a frequência dessas auditorias?",
				"Quem as realiza?",
				"Como os resultados são utilizados para melhoria?",
			}},
			{ID: "q25", Number: 25, Text: "Existe um processo formal de gestão de mudanças nos projetos (controle de escopo, aprovações, impactos)?", DetailFields: []string{
				"Há registro e análise formal das mudanças?",
				"Quem aprova as mudanças?",
				"Qual o impacto no cronograma, custo e escopo?",
			}},
			{ID: "q26", Number: 26, Text: "Os planos de projeto incluem planejamento de recursos humanos, comunicações, riscos e aquisições?", DetailFields: []string{
				"Todos os projetos incluem esses planos?",
				"Como são documentados e atualizados?",
				"Como esses planos são utilizados na execução?",
			}},
			{ID: "q27", Number: 27, Text: "Existe um processo para gerenciamento de riscos, com identificação, análise, plano de resposta e monitoramento?", DetailFields: []string{
				"Os riscos são classificados por impacto e probabilidade?",
				"Há plano de contingência documentado?",
				"Quem é responsável pelo monitoramento?",
			}},
			{ID: "q28", Number: 28, Text: "Os projetos contam com patrocínio ativo (sponsor), apoiando decisões críticas e removendo barreiras?", DetailFields: []string{
				"Quem atua como sponsor?",
				"Com que frequência participa das decisões?",
				"Como o apoio se manifesta (reuniões, decisões, recursos)?",
			}},
			{ID: "q29", Number: 29, Text: "Existe capacitação regular para os gerentes de projeto e equipes, com foco técnico e comportamental?", DetailFields: []string{
				"Quais temas são abordados nos treinamentos?",
				"Com que frequência são realizados?",
				"Quem ministra os treinamentos?",
			}},
			{ID: "q30", Number: 30, Text: "A gestão de projetos é considerada crítica para o sucesso organizacional, sendo acompanhada pela alta direção?", DetailFields: []string{
				"Quais mecanismos demonstram esse acompanhamento?",
				"A alta direção participa de reuniões ou relatórios periódicos?",
				"Há ações da alta direção com base nesses acompanhamentos?",
			}},
		},
	},
	{
		Level:  model.Level5,
		Number: 5,
		Name:   "Otimizado",
		Title:  "Nível 5 – Otimizado",
		Questions: []Question{
			{ID: "q31", Number: 31, Text: "Existe um processo formal de melhoria contínua da metodologia de gerenciamento de projetos?", DetailFields: []string{
				"Com que frequência a metodologia é revisada?",
				"Quem participa da revisão?",
				"Quais melhorias recentes foram implementadas?",
			}},
			{ID: "q32", Number: 32, Text: "As lições aprendidas são sistematicamente coletadas, analisadas e utilizadas em novos projetos?", DetailFields: []string{
				"Onde são armazenadas as lições aprendidas?",
				"Como são disseminadas?",
				"Cite exemplos de reaproveitamento efetivo.",
			}},
			{ID: "q33", Number: 33, Text: "Os indicadores de desempenho são utilizados para tomada de decisão e melhoria da gestão de projetos?", DetailFields: []string{
				"Como os dados são analisados?",
				"Há ações corretivas com base nos resultados?",
				"Quem participa da análise?",
			}},
			{ID: "q34", Number: 34, Text: "Há benchmark interno e externo para comparação da performance dos projetos?", DetailFields: []string{
				"Com quem são feitas as comparações (internas ou empresas externas)?",
				"Que critérios são usados?",
				"Que melhorias surgiram a partir do benchmark?",
			}},
			{ID: "q35", Number: 35, Text: "A cultura de gerenciamento de projetos está disseminada entre todas as áreas da organização?", DetailFields: []string{
				"Quais áreas utilizam práticas formais de GP?",
				"Há incentivo ou obrigatoriedade de uso?",
				"Há resistência em algum setor?",
			}},
			{ID: "q36", Number: 36, Text: "Existe um plano de carreira para profissionais de gerenciamento de projetos?", DetailFields: []string{
				"O plano é estruturado por níveis de experiência?",
				"Quais competências são consideradas?",
				"Há avaliação de desempenho ligada ao plano?",
			}},
			{ID: "q37", Number: 37, Text: "A organização possui certificações em gerenciamento de projetos ou exige isso de seus profissionais?", DetailFields: []string{
				"Quais certificações são exigidas ou incentivadas (ex: PMP, CAPM)?",
				"Quantos profissionais certificados existem?",
				"Há apoio institucional (reembolso, tempo para estudo)?",
			}},
			{ID: "q38", Number: 38, Text: "Existe uma comunidade de práticas ou fórum interno de discussão sobre gerenciamento de projetos?", DetailFields: []string{
				"Qual a frequência dos encontros?",
				"Que temas são abordados?",
				"Quem participa?",
			}},
			{ID: "q39", Number: 39, Text: "A organização realiza autoavaliações periódicas do grau de maturidade em gerenciamento de projetos?", DetailFields: []string{
				"Com que frequência são realizadas?",
				"Que metodologia é utilizada?",
				"Quais ações foram tomadas após as avaliações?",
			}},
			{ID: "q40", Number: 40, Text: "O Escritório de Projetos (PMO) atua estrategicamente, influenciando decisões da alta direção?", DetailFields: []string{
				"Em quais decisões o PMO influencia diretamente?",
				"Como a alta direção responde às recomendações do PMO?",
				"Cite exemplos de impacto estratégico.",
			}},
		},
	},
}
