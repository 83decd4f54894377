package demo

// chartRow is an I050 record: code, description, nature code, kind flag,
// level and parent code.
type chartRow [6]string

var chartRows = []chartRow{
	// Ativo
	{"1", "ATIVO", "01", "S", "1", ""},
	{"1.1", "ATIVO CIRCULANTE", "01", "S", "2", "1"},
	{"1.1.01", "DISPONIBILIDADES", "01", "S", "3", "1.1"},
	{"1.1.01.001", "Caixa Geral", "01", "A", "4", "1.1.01"},
	{"1.1.01.002", "Banco Bradesco C/C 1234-5", "01", "A", "4", "1.1.01"},
	{"1.1.01.003", "Banco Itaú C/C 9876-0", "01", "A", "4", "1.1.01"},
	{"1.1.02", "CLIENTES", "01", "S", "3", "1.1"},
	{"1.1.02.001", "Duplicatas a Receber", "01", "A", "4", "1.1.02"},
	{"1.1.02.002", "(-) Provisão p/ Devedores Duvidosos", "01", "A", "4", "1.1.02"},
	{"1.1.03", "ESTOQUES", "01", "S", "3", "1.1"},
	{"1.1.03.001", "Mercadorias para Revenda", "01", "A", "4", "1.1.03"},
	{"1.2", "ATIVO NÃO CIRCULANTE", "01", "S", "2", "1"},
	{"1.2.01", "IMOBILIZADO", "01", "S", "3", "1.2"},
	{"1.2.01.001", "Veículos", "01", "A", "4", "1.2.01"},
	{"1.2.01.002", "(-) Depreciação Acumulada Veículos", "01", "A", "4", "1.2.01"},
	{"1.2.01.003", "Móveis e Utensílios", "01", "A", "4", "1.2.01"},
	{"1.2.01.004", "Equipamentos de Informática", "01", "A", "4", "1.2.01"},

	// Passivo
	{"2", "PASSIVO", "02", "S", "1", ""},
	{"2.1", "PASSIVO CIRCULANTE", "02", "S", "2", "2"},
	{"2.1.01", "FORNECEDORES", "02", "S", "3", "2.1"},
	{"2.1.01.001", "Fornecedores Nacionais", "02", "A", "4", "2.1.01"},
	{"2.1.02", "OBRIGAÇÕES TRABALHISTAS", "02", "S", "3", "2.1"},
	{"2.1.02.001", "Salários a Pagar", "02", "A", "4", "2.1.02"},
	{"2.1.02.002", "FGTS a Recolher", "02", "A", "4", "2.1.02"},
	{"2.1.02.003", "INSS a Recolher", "02", "A", "4", "2.1.02"},
	{"2.1.03", "OBRIGAÇÕES FISCAIS", "02", "S", "3", "2.1"},
	{"2.1.03.001", "ICMS a Recolher", "02", "A", "4", "2.1.03"},
	{"2.1.03.002", "PIS a Recolher", "02", "A", "4", "2.1.03"},
	{"2.1.03.003", "COFINS a Recolher", "02", "A", "4", "2.1.03"},
	{"2.2", "PASSIVO NÃO CIRCULANTE", "02", "S", "2", "2"},
	{"2.2.01", "EMPRÉSTIMOS E FINANCIAMENTOS", "02", "S", "3", "2.2"},
	{"2.2.01.001", "Financiamento Veículo - Bradesco", "02", "A", "4", "2.2.01"},

	// Patrimônio líquido
	{"3", "PATRIMÔNIO LÍQUIDO", "03", "S", "1", ""},
	{"3.1", "CAPITAL SOCIAL", "03", "S", "2", "3"},
	{"3.1.01", "Capital Social Integralizado", "03", "A", "3", "3.1"},
	{"3.2", "RESERVAS E LUCROS", "03", "S", "2", "3"},
	{"3.2.01", "Lucros Acumulados", "03", "A", "3", "3.2"},

	// Resultado
	{"4", "RECEITAS", "04", "S", "1", ""},
	{"4.1", "RECEITA OPERACIONAL", "04", "S", "2", "4"},
	{"4.1.01", "Receita de Venda de Mercadorias", "04", "A", "3", "4.1"},
	{"4.1.02", "Receita de Prestação de Serviços", "04", "A", "3", "4.1"},
	{"5", "CUSTOS E DESPESAS", "04", "S", "1", ""},
	{"5.1", "CUSTOS", "04", "S", "2", "5"},
	{"5.1.01", "CMV - Custo das Mercadorias Vendidas", "04", "A", "3", "5.1"},
	{"5.2", "DESPESAS OPERACIONAIS", "04", "S", "2", "5"},
	{"5.2.01", "Despesas com Pessoal", "04", "A", "3", "5.2"},
	{"5.2.02", "Despesas Administrativas", "04", "A", "3", "5.2"},
	{"5.2.03", "Despesas com Depreciação", "04", "A", "3", "5.2"},
}

// balanceRow is an I155 record with a zero opening balance.
type balanceRow struct {
	code       string
	closing    string
	closingInd string
	debit      string
	credit     string
	openingInd string
}

var balanceRows = []balanceRow{
	{"1.1.01.001", "15000.00", "D", "50000.00", "35000.00", "D"},
	{"1.1.01.002", "85000.00", "D", "200000.00", "115000.00", "D"},
	{"1.1.01.003", "42000.00", "D", "150000.00", "108000.00", "D"},
	{"1.1.02.001", "120000.00", "D", "300000.00", "180000.00", "D"},
	{"1.1.02.002", "6000.00", "C", "0.00", "6000.00", "C"},
	{"1.1.03.001", "75000.00", "D", "180000.00", "105000.00", "D"},
	{"1.2.01.001", "95000.00", "D", "95000.00", "0.00", "D"},
	{"1.2.01.002", "19000.00", "C", "0.00", "19000.00", "C"},
	{"1.2.01.003", "25000.00", "D", "25000.00", "0.00", "D"},
	// Equipment carried with a credit balance.
	{"1.2.01.004", "8500.00", "C", "15000.00", "23500.00", "D"},
	{"2.1.01.001", "45000.00", "C", "30000.00", "75000.00", "C"},
	{"2.1.02.001", "12000.00", "C", "144000.00", "156000.00", "C"},
	// FGTS carried with a debit balance.
	{"2.1.02.002", "3500.00", "D", "15000.00", "11500.00", "C"},
	{"2.1.02.003", "8000.00", "C", "96000.00", "104000.00", "C"},
	// ICMS carried with a debit balance; may be an accumulated tax credit.
	{"2.1.03.001", "12000.00", "D", "85000.00", "73000.00", "C"},
	{"2.1.03.002", "3200.00", "C", "38400.00", "41600.00", "C"},
	{"2.1.03.003", "14800.00", "C", "177600.00", "192400.00", "C"},
	{"2.2.01.001", "65000.00", "C", "24000.00", "89000.00", "C"},
	{"3.1.01", "100000.00", "C", "0.00", "100000.00", "C"},
	{"3.2.01", "85000.00", "C", "0.00", "85000.00", "C"},
	{"4.1.01", "480000.00", "C", "0.00", "480000.00", "C"},
	{"4.1.02", "120000.00", "C", "0.00", "120000.00", "C"},
	{"5.1.01", "288000.00", "D", "288000.00", "0.00", "D"},
	{"5.2.01", "144000.00", "D", "144000.00", "0.00", "D"},
	{"5.2.02", "72000.00", "D", "72000.00", "0.00", "D"},
	{"5.2.03", "19000.00", "D", "19000.00", "0.00", "D"},
}
