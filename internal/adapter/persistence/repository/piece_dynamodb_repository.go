package repository

import (
	"context"
	"errors"

	"xtagy_banho/internal/domain/entities"
	"xtagy_banho/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPiecesTableName = "pecas"
	piecesOrderIDIndex     = "order_id-index"
)

type labelItem struct {
	Layout       string `dynamodbav:"layout"`
	GeneratedAt  string `dynamodbav:"generated_at"`
	InternalCode string `dynamodbav:"internal_code"`
	PesoPeca     string `dynamodbav:"peso_peca"`
	ValorBruto   string `dynamodbav:"valor_bruto"`
	Camadas      string `dynamodbav:"camadas"`
	MaoDeObra    string `dynamodbav:"mao_de_obra"`
	CotacaoOuro  string `dynamodbav:"cotacao_ouro"`
	CustoFinal   string `dynamodbav:"custo_final"`
}

type pieceItem struct {
	ID                string     `dynamodbav:"id"`
	OrderID           string     `dynamodbav:"order_id"`
	Photo             string     `dynamodbav:"photo"`
	InternalCode      string     `dynamodbav:"internal_code"`
	Type              string     `dynamodbav:"type"`
	PesoPeca          string     `dynamodbav:"peso_peca"`
	ValorPecaBruta    string     `dynamodbav:"valor_peca_bruta"`
	Camadas           string     `dynamodbav:"camadas"`
	MaoDeObra         string     `dynamodbav:"mao_de_obra"`
	CotacaoOuroDia    string     `dynamodbav:"cotacao_ouro_dia"`
	CalculoMetal      string     `dynamodbav:"calculo_metal"`
	CustoFinalCliente string     `dynamodbav:"custo_final_cliente"`
	SuggestedPrice    string     `dynamodbav:"suggested_price"`
	Label             *labelItem `dynamodbav:"label,omitempty"`
}

// PieceDynamoRepository persists Piece entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//
// Every numeric field is stored as an exact decimal string: the derived
// monetary values are a creation-time snapshot and must round-trip
// bit-for-bit.

type PieceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPieceRepository = (*PieceDynamoRepository)(nil)

func NewPieceDynamoRepository(ddb *dynamodb.Client, settings Settings) *PieceDynamoRepository {
	return &PieceDynamoRepository{
		ddb:       ddb,
		tableName: settings.TableName(getenvDefault("PIECES_TABLE", defaultPiecesTableName)),
	}
}

func (r *PieceDynamoRepository) Create(ctx context.Context, p entities.Piece) (entities.Piece, error) {
	it := toPieceItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Piece{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Piece{}, err
	}
	return p, nil
}

func (r *PieceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Piece, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Piece{}, err
	}
	if len(out.Item) == 0 {
		return entities.Piece{}, nil
	}

	var it pieceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Piece{}, err
	}
	return fromPieceItem(it), nil
}

func (r *PieceDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Piece, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(piecesOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	pieces := make([]entities.Piece, 0, len(out.Items))
	for _, raw := range out.Items {
		var it pieceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		pieces = append(pieces, fromPieceItem(it))
	}
	return pieces, nil
}

func (r *PieceDynamoRepository) UpdateLabel(ctx context.Context, id string, label entities.LabelSnapshot) (entities.Piece, error) {
	li := toLabelItem(label)
	av, err := attributevalue.MarshalMap(li)
	if err != nil {
		return entities.Piece{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #label = :label"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":label": &types.AttributeValueMemberM{Value: av},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":    "id",
			"#label": "label",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Piece{}, nil
		}
		return entities.Piece{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Piece{}, nil
	}

	var it pieceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Piece{}, err
	}
	return fromPieceItem(it), nil
}

func toPieceItem(p entities.Piece) pieceItem {
	it := pieceItem{
		ID:                p.ID,
		OrderID:           p.OrderID,
		Photo:             p.Photo,
		InternalCode:      p.InternalCode,
		Type:              p.Type,
		PesoPeca:          floatToString(p.PesoPeca),
		ValorPecaBruta:    floatToString(p.ValorPecaBruta),
		Camadas:           floatToString(p.Camadas),
		MaoDeObra:         floatToString(p.MaoDeObra),
		CotacaoOuroDia:    floatToString(p.CotacaoOuroDia),
		CalculoMetal:      floatToString(p.CalculoMetal),
		CustoFinalCliente: floatToString(p.CustoFinalCliente),
		SuggestedPrice:    floatToString(p.SuggestedPrice),
	}
	if p.Label != nil {
		li := toLabelItem(*p.Label)
		it.Label = &li
	}
	return it
}

func fromPieceItem(it pieceItem) entities.Piece {
	p := entities.Piece{
		ID:                it.ID,
		OrderID:           it.OrderID,
		Photo:             it.Photo,
		InternalCode:      it.InternalCode,
		Type:              it.Type,
		PesoPeca:          stringToFloat(it.PesoPeca),
		ValorPecaBruta:    stringToFloat(it.ValorPecaBruta),
		Camadas:           stringToFloat(it.Camadas),
		MaoDeObra:         stringToFloat(it.MaoDeObra),
		CotacaoOuroDia:    stringToFloat(it.CotacaoOuroDia),
		CalculoMetal:      stringToFloat(it.CalculoMetal),
		CustoFinalCliente: stringToFloat(it.CustoFinalCliente),
		SuggestedPrice:    stringToFloat(it.SuggestedPrice),
	}
	if it.Label != nil {
		label := fromLabelItem(*it.Label)
		p.Label = &label
	}
	return p
}

func toLabelItem(l entities.LabelSnapshot) labelItem {
	return labelItem{
		Layout:       string(l.Layout),
		GeneratedAt:  formatTime(l.GeneratedAt),
		InternalCode: l.InternalCode,
		PesoPeca:     floatToString(l.PesoPeca),
		ValorBruto:   floatToString(l.ValorBruto),
		Camadas:      floatToString(l.Camadas),
		MaoDeObra:    floatToString(l.MaoDeObra),
		CotacaoOuro:  floatToString(l.CotacaoOuro),
		CustoFinal:   floatToString(l.CustoFinal),
	}
}

func fromLabelItem(it labelItem) entities.LabelSnapshot {
	return entities.LabelSnapshot{
		Layout:       entities.LabelLayout(it.Layout),
		GeneratedAt:  parseTime(it.GeneratedAt),
		InternalCode: it.InternalCode,
		PesoPeca:     stringToFloat(it.PesoPeca),
		ValorBruto:   stringToFloat(it.ValorBruto),
		Camadas:      stringToFloat(it.Camadas),
		MaoDeObra:    stringToFloat(it.MaoDeObra),
		CotacaoOuro:  stringToFloat(it.CotacaoOuro),
		CustoFinal:   stringToFloat(it.CustoFinal),
	}
}
